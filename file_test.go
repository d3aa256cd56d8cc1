package cff

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCitation = `# This file was written by hand.
# Keep it up to date.
---
cff-version: 1.2.0
message: If you use this software in your work, please cite it.
title: My Research Software
authors:
  - family-names: Haines
    given-names: Robert
keywords:
  - citation
`

func TestReadIndex(t *testing.T) {
	i, err := ReadIndex([]byte(testCitation))
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if got := i.Title(); got != "My Research Software" {
		t.Errorf("Title() = %q", got)
	}
	if len(i.Authors()) != 1 {
		t.Errorf("got %d authors, want 1", len(i.Authors()))
	}
}

func TestReadIndexErrors(t *testing.T) {
	if _, err := ReadIndex([]byte("{{not yaml")); err == nil {
		t.Error("ReadIndex accepted malformed YAML")
	}
	if _, err := ReadIndex([]byte("")); err == nil {
		t.Error("ReadIndex accepted an empty document")
	}
}

func TestReadFilePreservesComment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CanonicalFilename)
	if err := os.WriteFile(path, []byte(testCitation), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	comment := f.Comment()
	if len(comment) != 2 || !strings.Contains(comment[0], "written by hand") {
		t.Errorf("Comment() = %v", comment)
	}

	out := filepath.Join(dir, "out", CanonicalFilename)
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		t.Fatal(err)
	}
	if err := f.WriteTo(out); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "# This file was written by hand.") {
		t.Errorf("comment not written back:\n%s", text)
	}
	if !strings.Contains(text, "---\n") {
		t.Error("YAML document marker missing")
	}
	if !strings.Contains(text, "title: My Research Software") {
		t.Errorf("title missing from output:\n%s", text)
	}
}

func TestFileWriteAndReadBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CanonicalFilename)

	f := NewFile(path, "My Research Software")
	f.Index.AddAuthor(NewPerson("Robert", "Haines"))
	if err := f.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}

	read, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := read.Index.Title(); got != "My Research Software" {
		t.Errorf("Title() after round trip = %q", got)
	}
	if got := read.Index.CFFVersion(); got != DefaultVersion {
		t.Errorf("CFFVersion() after round trip = %q", got)
	}
	if len(read.Index.Authors()) != 1 {
		t.Errorf("got %d authors after round trip", len(read.Index.Authors()))
	}
}

func TestFileValidFilename(t *testing.T) {
	if !(&File{Path: "/some/dir/CITATION.cff"}).ValidFilename() {
		t.Error("canonical filename reported invalid")
	}
	if (&File{Path: "/some/dir/citation.cff"}).ValidFilename() {
		t.Error("lowercase filename reported valid")
	}
	if (&File{Path: "CITATION.yml"}).ValidFilename() {
		t.Error("wrong extension reported valid")
	}
}

func TestFileCheckValidFlagsFilename(t *testing.T) {
	set := newTestSchemaSet(t, "1.2.0")

	f := NewFile("my-citation.yml", "My Research Software")
	f.Index.AddAuthor(NewPerson("Robert", "Haines"))

	err := f.CheckValid(set, ValidateOptions{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("CheckValid() = %v, want *ValidationError", err)
	}
	if !ve.InvalidFilename {
		t.Error("InvalidFilename not set for non-canonical filename")
	}
	if len(ve.Failures) != 0 {
		t.Errorf("schema failures reported for a valid document: %v", ve.Failures)
	}
}
