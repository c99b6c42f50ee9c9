// Package modelstore reads and writes fitted pipeline artifacts.
//
// Artifacts are JSON documents; a path ending in ".gz" is gzip-compressed.
// No checksum or version tag is stored; LoadArtifact computes the checksum
// of the bytes it read.
package modelstore

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/ml"
)

// Default artifact location
const (
	DefaultDir  = "models"
	DefaultName = "fake_news_model.json"
)

// DefaultPath is the artifact the server loads when no path is configured
var DefaultPath = filepath.Join(DefaultDir, DefaultName)

// ErrModelNotFound is returned by Load when the artifact does not exist
var ErrModelNotFound = errors.New("model not found")

// Save writes model to DefaultDir under name and returns the written path.
func Save(model *ml.Pipeline, name string) (string, error) {
	return SaveTo(DefaultDir, model, name)
}

// SaveTo writes model to dir under name, creating dir if needed.
func SaveTo(dir string, model *ml.Pipeline, name string) (string, error) {
	if model == nil {
		return "", errors.New("model is nil")
	}
	if name == "" {
		name = DefaultName
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	payload, err := json.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to encode model: %w", err)
	}

	path := filepath.Join(dir, name)
	if isCompressed(path) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return "", fmt.Errorf("failed to compress model: %w", err)
		}
		if err := zw.Close(); err != nil {
			return "", fmt.Errorf("failed to compress model: %w", err)
		}
		payload = buf.Bytes()
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write model: %w", err)
	}
	return path, nil
}

// Artifact is a loaded pipeline together with the checksum of its file
type Artifact struct {
	Model    *ml.Pipeline
	Checksum string
}

// Load reads the artifact at path. A missing file yields ErrModelNotFound;
// anything else that goes wrong surfaces the underlying decode error.
func Load(path string) (*ml.Pipeline, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return artifact.Model, nil
}

// LoadArtifact is Load that also returns the sha256 of the file as stored.
func LoadArtifact(path string) (*Artifact, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat model: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	sum := sha256.Sum256(data)

	var r io.Reader = bytes.NewReader(data)
	if isCompressed(path) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress model: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	model, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return &Artifact{Model: model, Checksum: hex.EncodeToString(sum[:])}, nil
}

// Decode reads a JSON pipeline from r and validates it.
func Decode(r io.Reader) (*ml.Pipeline, error) {
	var model ml.Pipeline
	if err := json.NewDecoder(r).Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &model, nil
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".gz")
}
