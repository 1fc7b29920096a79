// Package wordlist loads a newline-delimited word list into memory.
//
// The whole file is read into a single buffer bounded by a configured
// maximum; the search never streams. Lists compressed with gzip or zstd are
// recognised by their magic bytes and decompressed transparently, and the
// bound applies to the decompressed size.
package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/matzehuels/fivewords/pkg/errors"
)

// DefaultMaxBytes is the input bound when none is configured (8 MiB).
// The widely used words_alpha.txt list is a little over 4 MiB.
const DefaultMaxBytes int64 = 8 << 20

// DefaultPath is the word list read when no path is given.
const DefaultPath = "words_alpha.txt"

// Compression identifies how a word list is encoded on disk.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return "none"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Load reads the word list at path.
//
// A file that cannot be opened or read fails with INPUT_UNAVAILABLE. A file
// larger than maxBytes fails with INPUT_TOO_LARGE before any of it is read;
// for compressed files the decompressed size is checked as well.
// maxBytes <= 0 selects DefaultMaxBytes.
func Load(path string, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputUnavailable, err, "open word list %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputUnavailable, err, "stat word list %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeInputUnavailable, "word list %s is a directory", path)
	}
	if info.Size() > maxBytes {
		return nil, tooLarge(path, info.Size(), maxBytes)
	}

	data, err := Read(f, maxBytes)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInputTooLarge) {
			return nil, errors.Wrap(errors.ErrCodeInputTooLarge, err, "word list %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInputUnavailable, err, "read word list %s", path)
	}
	return data, nil
}

// Read reads a whole, possibly compressed, word list from r.
// More than maxBytes of (decompressed) content fails with INPUT_TOO_LARGE.
func Read(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	br := bufio.NewReader(r)
	src, closeFn, err := decoder(br)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if n > maxBytes {
		return nil, errors.New(errors.ErrCodeInputTooLarge, "content exceeds %d bytes", maxBytes)
	}
	return buf.Bytes(), nil
}

// Detect reports the compression of the stream behind br without consuming it.
func Detect(br *bufio.Reader) Compression {
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

func decoder(br *bufio.Reader) (io.Reader, func(), error) {
	switch c := Detect(br); c {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", c, err)
		}
		return zr, func() { _ = zr.Close() }, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", c, err)
		}
		return zr, zr.Close, nil
	default:
		return br, func() {}, nil
	}
}

func tooLarge(path string, size, limit int64) error {
	return errors.New(errors.ErrCodeInputTooLarge, "word list %s is %d KB, limit is %d KB", path, size/1024, limit/1024)
}
