// Package model defines the data structures shared by the DeepUnit adapters and domain.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Dir returns the directory component of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Ext returns the file extension including the leading dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

// SourceFile identifies a unit under test. It is owned by the filesystem and
// never written by DeepUnit.
type SourceFile struct {
	Path      Path
	Content   []byte
	Companion *File // markup template paired with the source, if any
}

// File is a path together with its content snapshot.
type File struct {
	Path    Path
	Content []byte
}

// TestFile is the generated or maintained test for a SourceFile.
type TestFile struct {
	Path    Path
	Content []byte
	// Existed reports whether the file was present with content before
	// DeepUnit touched it.
	Existed bool
	// Created reports whether DeepUnit created an empty placeholder for it.
	Created bool
}

// Scripts whose extension can carry a test companion.
var scriptExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// IsScript reports whether the path has a JS/TS script extension.
func IsScript(p Path) bool {
	ext := p.Ext()
	for _, candidate := range scriptExtensions {
		if ext == candidate {
			return true
		}
	}

	return false
}

// TestPathFor derives the test file path for a source path:
// dir/<base>.<suffix><ext>, e.g. foo.ts -> foo.test.ts.
func TestPathFor(source Path, suffix string) Path {
	ext := source.Ext()
	base := strings.TrimSuffix(string(source), ext)

	return Path(base + "." + suffix + ext)
}

// IsTestPath reports whether the path is itself a test file for the given suffix.
func IsTestPath(p Path, suffix string) bool {
	ext := p.Ext()
	return strings.HasSuffix(strings.TrimSuffix(string(p), ext), "."+suffix)
}

// CompanionPathFor returns the markup template path paired with a source
// file, e.g. app.component.ts -> app.component.html.
func CompanionPathFor(source Path) Path {
	return Path(strings.TrimSuffix(string(source), source.Ext()) + ".html")
}

// SourcePathForCompanion maps a markup template back to its script source.
func SourcePathForCompanion(companion Path, ext string) Path {
	return Path(strings.TrimSuffix(string(companion), companion.Ext()) + ext)
}

// Target is one logical unit scheduled for the repair loop.
type Target struct {
	Source    Path
	Test      Path
	Companion Path // empty when the source has no markup template
}

// TargetGroup holds the targets discovered in one directory, in discovery order.
type TargetGroup struct {
	Dir     Path
	Sources []Path
}
