// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/valreport/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSessionJSON saves the full report session as JSON.
func (s *Sink) SaveSessionJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "session.json")
	return s.fs.WriteFile(path, data)
}

// SaveMetricsJSON saves the performance report snapshot as JSON.
func (s *Sink) SaveMetricsJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "metrics.json")
	return s.fs.WriteFile(path, data)
}

// SaveScreenshot saves one captured screenshot.
func (s *Sink) SaveScreenshot(index int, name string, data []byte) error {
	dir := filepath.Join(s.baseDir, "screenshots")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("%02d-%s.png", index, sanitize(name)))
	return s.fs.WriteFile(path, data)
}

// SaveBanner saves the rendered status banner image.
func (s *Sink) SaveBanner(img image.Image) error {
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode banner: %w", err)
	}
	path := filepath.Join(s.baseDir, "banner.png")
	return s.fs.WriteFile(path, data)
}

// SaveReportHTML saves a copy of the generated document.
func (s *Sink) SaveReportHTML(data []byte) error {
	path := filepath.Join(s.baseDir, "report.html")
	return s.fs.WriteFile(path, data)
}

// sanitize makes a screenshot name safe to use in a filename.
func sanitize(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_", ":", "-")
	return replacer.Replace(name)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
