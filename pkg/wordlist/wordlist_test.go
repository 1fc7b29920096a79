package wordlist

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/matzehuels/fivewords/pkg/errors"
)

const sampleList = "a\nabout\nfjord\ngucks\nsassy\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		data func(t *testing.T) []byte
		want Compression
	}{
		{"plain", func(*testing.T) []byte { return []byte(sampleList) }, CompressionNone},
		{"gzip", func(t *testing.T) []byte { return gzipped(t, sampleList) }, CompressionGzip},
		{"zstd", func(t *testing.T) []byte { return zstded(t, sampleList) }, CompressionZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.data(t)
			if got := Detect(bufio.NewReader(bytes.NewReader(raw))); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}

			path := writeFile(t, "words."+tt.name, raw)
			data, err := Load(path, 0)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if string(data) != sampleList {
				t.Errorf("Load() = %q, want %q", data, sampleList)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 0)
	if !errors.Is(err, errors.ErrCodeInputUnavailable) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInputUnavailable)
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir(), 0)
	if !errors.Is(err, errors.ErrCodeInputUnavailable) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInputUnavailable)
	}
}

func TestLoadTooLarge(t *testing.T) {
	path := writeFile(t, "big.txt", []byte(strings.Repeat("fjord\n", 100)))

	_, err := Load(path, 599)
	if !errors.Is(err, errors.ErrCodeInputTooLarge) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInputTooLarge)
	}

	if _, err := Load(path, 600); err != nil {
		t.Errorf("Load() at exact limit error: %v", err)
	}
}

func TestLoadDecompressedTooLarge(t *testing.T) {
	content := strings.Repeat("fjord\n", 1000)
	raw := gzipped(t, content)
	if int64(len(raw)) >= 1000 {
		t.Fatalf("fixture compressed to %d bytes, expected far less", len(raw))
	}
	path := writeFile(t, "big.txt.gz", raw)

	_, err := Load(path, 1000)
	if !errors.Is(err, errors.ErrCodeInputTooLarge) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInputTooLarge)
	}
}

func TestLoadCorruptGzip(t *testing.T) {
	raw := append([]byte{0x1f, 0x8b}, []byte("not really gzip")...)
	path := writeFile(t, "bad.gz", raw)

	_, err := Load(path, 0)
	if !errors.Is(err, errors.ErrCodeInputUnavailable) {
		t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeInputUnavailable)
	}
}

func TestReadEmpty(t *testing.T) {
	data, err := Read(bytes.NewReader(nil), 10)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Read() = %q, want empty", data)
	}
}

func TestCompressionString(t *testing.T) {
	for c, want := range map[Compression]string{
		CompressionNone: "none",
		CompressionGzip: "gzip",
		CompressionZstd: "zstd",
	} {
		if c.String() != want {
			t.Errorf("%d.String() = %q, want %q", c, c.String(), want)
		}
	}
}
