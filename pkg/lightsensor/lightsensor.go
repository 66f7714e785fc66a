// Package lightsensor reads the ambient light sensor. A read failure
// always degrades to "no ambient reading" at the call site; it is
// logged at this boundary and never aborts an interaction.
package lightsensor

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultSysfsPath is the visible photodiode of the si114x sensor
// family exposed through sysfs.
const DefaultSysfsPath = "/sys/devices/virtual/input/input3/als_vis_data"

// Sysfs reads ambient levels from a file-backed ADC. The file stays
// open for the process lifetime; each read seeks back to the start.
type Sysfs struct {
	file *os.File
}

// NewSysfs opens the sensor node at path.
func NewSysfs(path string) (*Sysfs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open light sensor: %w", err)
	}
	return &Sysfs{file: file}, nil
}

// Level returns the current ambient reading.
func (s *Sysfs) Level() (int, error) {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to rewind light sensor: %w", err)
	}
	data, err := io.ReadAll(s.file)
	if err != nil {
		return 0, fmt.Errorf("failed to read light sensor: %w", err)
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse light sensor value: %w", err)
	}
	return value, nil
}

// Close releases the sensor node.
func (s *Sysfs) Close() error {
	return s.file.Close()
}

// Fake is a scripted sensor for tests and the demo binary.
type Fake struct {
	Value int
	Err   error
	Reads int
}

func (f *Fake) Level() (int, error) {
	f.Reads++
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Value, nil
}
