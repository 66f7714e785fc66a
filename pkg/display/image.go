package display

import (
	"image"

	"github.com/go-folio/folio/pkg/geom"
)

// Commit records one committed region, in submission order.
type Commit struct {
	Rect geom.Rectangle
	Mode UpdateMode
}

// ImageFramebuffer is an in-memory grayscale framebuffer. It backs the
// demo binary and the engine tests: pixels land in a plain image.Gray
// and every Update call is appended to an ordered commit log.
type ImageFramebuffer struct {
	*image.Gray
	commits []Commit
}

// NewImageFramebuffer returns a white framebuffer of the given size.
func NewImageFramebuffer(width, height int) *ImageFramebuffer {
	fb := &ImageFramebuffer{Gray: image.NewGray(image.Rect(0, 0, width, height))}
	FillRect(fb, geom.Rect(0, 0, width-1, height-1), White)
	return fb
}

// Update records the commit. It never fails; the hardware-backed
// implementation is where refresh errors can surface.
func (fb *ImageFramebuffer) Update(rect geom.Rectangle, mode UpdateMode) error {
	fb.commits = append(fb.commits, Commit{Rect: rect, Mode: mode})
	return nil
}

// Commits returns the commit log in submission order.
func (fb *ImageFramebuffer) Commits() []Commit {
	return fb.commits
}

// ResetCommits clears the commit log.
func (fb *ImageFramebuffer) ResetCommits() {
	fb.commits = nil
}
