package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the concrete file locations for one invocation: the four
// source files under the input directory and the export directory.
type Paths struct {
	InputDir  string
	OutputDir string

	FactPath     string
	DirectorPath string
	GenrePath    string
	LanguagePath string
}

// NewPaths builds the resolved paths from an input configuration and output
// directory.
func NewPaths(input InputConfig, outputDir string) *Paths {
	return &Paths{
		InputDir:     input.Dir,
		OutputDir:    outputDir,
		FactPath:     filepath.Join(input.Dir, input.Fact),
		DirectorPath: filepath.Join(input.Dir, input.Director),
		GenrePath:    filepath.Join(input.Dir, input.Genre),
		LanguagePath: filepath.Join(input.Dir, input.Language),
	}
}

// SourcePaths returns the four source locations in load order.
func (p *Paths) SourcePaths() []string {
	return []string{p.FactPath, p.DirectorPath, p.GenrePath, p.LanguagePath}
}

// EnsureOutputDir creates the export directory if it does not exist.
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", p.OutputDir, err)
	}
	return nil
}

// ExportPath returns <output_dir>/<name><ext> for a named result.
func (p *Paths) ExportPath(name, ext string) string {
	return filepath.Join(p.OutputDir, name+ext)
}

// ReportPath returns the location of the combined report document.
func (p *Paths) ReportPath() string {
	return filepath.Join(p.OutputDir, ReportFile)
}

// WorkbookPath returns the location of the combined Excel workbook.
func (p *Paths) WorkbookPath() string {
	return filepath.Join(p.OutputDir, WorkbookFile)
}

// GetLogPath returns the path for a log file, creating the logs directory
// next to the working directory when needed.
func GetLogPath(name string) string {
	dir := "logs"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return name
	}
	return filepath.Join(dir, name)
}
