package io

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	"github.com/matzehuels/bmcanvas/pkg/model"
)

// Stdin is the path understood by [ImportFile] as standard input.
const Stdin = "-"

// ReadYAML decodes and validates a YAML document from r.
// Unknown keys are rejected. ReadYAML does not close r.
func ReadYAML(r io.Reader) (*model.Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc *model.Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, bmerrors.New(bmerrors.ErrCodeInvalidDocument, "document is empty")
		}
		return nil, bmerrors.Wrap(bmerrors.ErrCodeInvalidDocument, err, "decode yaml")
	}
	return validated(doc)
}

// ReadJSON decodes and validates a JSON document from r.
// Unknown keys are rejected. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*model.Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc *model.Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, bmerrors.New(bmerrors.ErrCodeInvalidDocument, "document is empty")
		}
		return nil, bmerrors.Wrap(bmerrors.ErrCodeInvalidDocument, err, "decode json")
	}
	return validated(doc)
}

func validated(doc *model.Document) (*model.Document, error) {
	if doc == nil {
		return nil, bmerrors.New(bmerrors.ErrCodeInvalidDocument, "document is empty")
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportFile reads the document at path, choosing the decoder from the file
// extension. [Stdin] reads YAML (and therefore JSON) from standard input.
func ImportFile(path string) (*model.Document, error) {
	if path == Stdin {
		return ReadYAML(os.Stdin)
	}

	var read func(io.Reader) (*model.Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read = ReadYAML
	case ".json":
		read = ReadJSON
	default:
		return nil, bmerrors.New(bmerrors.ErrCodeInvalidFormat,
			"unsupported document extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, bmerrors.Wrap(bmerrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, bmerrors.Wrap(bmerrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	doc, err := read(f)
	if err != nil {
		var e *bmerrors.Error
		if errors.As(err, &e) {
			e.Message = path + ": " + e.Message
			return nil, e
		}
		return nil, err
	}
	return doc, nil
}
