package errors

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a FolioError to stderr.
func (h *LogHandler) HandleError(err *FolioError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[folio error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[folio panic] %v\n", err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// FileHandler is a Handler that appends errors to a rotating log file
// on device storage.
type FileHandler struct {
	out io.Writer
}

// NewFileHandler returns a handler writing to path, rotating at a few
// megabytes so the log cannot fill the device.
func NewFileHandler(path string) *FileHandler {
	return &FileHandler{out: &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}}
}

// HandleError appends a FolioError to the log file.
func (h *FileHandler) HandleError(err *FolioError) {
	if err == nil {
		return
	}
	fmt.Fprintf(h.out, "%s error %s [%s]: %v\n",
		err.Timestamp.Format(time.RFC3339), err.Op, err.Kind, err.Err)
}

// HandlePanic appends a PanicError with its stack to the log file.
func (h *FileHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fmt.Fprintf(h.out, "%s %v\n", err.Timestamp.Format(time.RFC3339), err)
	if err.StackTrace != "" {
		fmt.Fprintf(h.out, "%s\n", err.StackTrace)
	}
}
