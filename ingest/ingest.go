// Package ingest turns uploaded tabular files into datasets.  The only
// responsibility here is picking the decoder for a declared filename
// extension and attributing failures; decoding itself is delegated to
// format specific decoders which self-register, and the caller owns the
// file resource lifetime on every exit path.
package ingest

import (
	"io"
	"path/filepath"
	"strings"
	"sync"

	u "github.com/araddon/gou"

	"github.com/Phaust94/sqlite-interface/models"
)

// Decoder parses one upload format into a dataset.
type Decoder func(r io.Reader) (*models.Dataset, error)

var (
	// the global format-decoder registry mutex
	registryMu sync.Mutex
	registry   = make(map[string]Decoder)
)

// RegisterDecoder a decoder available by the provided @ext (no dot)
func RegisterDecoder(ext string, dec Decoder) {
	if dec == nil {
		panic("Format decoders must not be nil")
	}
	ext = strings.ToLower(ext)
	u.Debugf("global format-decoder register: %v", ext)
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dupe := registry[ext]; dupe {
		panic("RegisterDecoder called twice for extension " + ext)
	}
	registry[ext] = dec
}

func decoderGet(ext string) (Decoder, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	dec, ok := registry[strings.ToLower(ext)]
	return dec, ok
}

// Parse dispatch on the declared filename's extension and decode the
// stream into a dataset.  Unknown extensions fail with an
// UnsupportedFormatError naming the extension; storage is never
// involved here.
func Parse(r io.Reader, declaredFilename string) (*models.Dataset, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(declaredFilename)), ".")
	dec, ok := decoderGet(ext)
	if !ok {
		return nil, &models.UnsupportedFormatError{Ext: ext}
	}
	return dec(r)
}
