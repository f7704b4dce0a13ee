package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xsequence/multicaller/sonic"
	"github.com/goware/superr"
)

var (
	ErrMissingFile       = errors.New("artifact: metadata file not found")
	ErrMalformedDocument = errors.New("artifact: metadata is not a valid json object")
	ErrMissingField      = errors.New("artifact: metadata field missing")
)

// Spec names one contract build artifact by its metadata path, relative to
// the ink! target directory, and the label its hash is reported under.
type Spec struct {
	RelativePath string
	Label        string
}

const (
	LabelAccumulator = "accumulator"
	LabelSubber      = "subber"
	LabelAdder       = "adder"
)

// Specs is the read order of the caller's dependencies. It is not the order
// the hashes are passed to the constructor, see encoder.NewCommand.
var Specs = []Spec{
	{RelativePath: "accumulator/accumulator.json", Label: LabelAccumulator},
	{RelativePath: "subber/subber.json", Label: LabelSubber},
	{RelativePath: "adder/adder.json", Label: LabelAdder},
}

// Path returns the metadata file location under dir.
func (s Spec) Path(dir string) string {
	return filepath.Join(dir, s.RelativePath)
}

// Metadata is the decoded ink! metadata document. Only source.hash is ever
// looked at, everything else is carried as-is.
type Metadata map[string]any

func ParseMetadataJSON(data []byte) (Metadata, error) {
	obj, err := sonic.UnmarshalObject(data)
	if err != nil {
		return nil, superr.New(ErrMalformedDocument, err)
	}
	return Metadata(obj), nil
}

func ParseMetadataFile(path string) (Metadata, error) {
	filedata, err := os.ReadFile(path)
	if err != nil {
		return nil, superr.New(ErrMissingFile, err)
	}
	return ParseMetadataJSON(filedata)
}

// SourceHash returns the value of source.hash.
func (m Metadata) SourceHash() (string, error) {
	raw, ok := m["source"]
	if !ok {
		return "", superr.New(ErrMissingField, fmt.Errorf("key %q not found", "source"))
	}
	source, ok := raw.(map[string]any)
	if !ok {
		return "", superr.New(ErrMissingField, fmt.Errorf("key %q is not an object", "source"))
	}

	raw, ok = source["hash"]
	if !ok {
		return "", superr.New(ErrMissingField, fmt.Errorf("key %q not found", "source.hash"))
	}
	hash, ok := raw.(string)
	if !ok {
		return "", superr.New(ErrMissingField, fmt.Errorf("key %q is not a string", "source.hash"))
	}
	return hash, nil
}

// ReadHash reads the metadata file at path and returns its source.hash.
func ReadHash(path string) (string, error) {
	metadata, err := ParseMetadataFile(path)
	if err != nil {
		return "", err
	}
	return metadata.SourceHash()
}

// Result is the outcome of reading one artifact's hash.
type Result struct {
	Spec Spec
	Path string
	Hash string
	Err  error
}

// Extract reads every spec under dir in order, calling onResult after each
// read. A failed read never stops the remaining ones. Only non-empty hashes
// make it into the returned table.
func Extract(dir string, specs []Spec, onResult func(Result)) *HashTable {
	hashes := NewHashTable()
	for _, spec := range specs {
		res := Result{Spec: spec, Path: spec.Path(dir)}
		res.Hash, res.Err = ReadHash(res.Path)
		if res.Err == nil && res.Hash != "" {
			if err := hashes.Add(spec.Label, res.Hash); err != nil {
				res.Err = err
			}
		}
		if onResult != nil {
			onResult(res)
		}
	}
	return hashes
}
