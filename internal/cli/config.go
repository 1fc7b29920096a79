package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	fwerrors "github.com/matzehuels/fivewords/pkg/errors"
	"github.com/matzehuels/fivewords/pkg/pipeline"
)

// fileConfig is the layout of config.toml.
//
//	wordlist = "/usr/share/dict/words_alpha.txt"
//	workers  = 8
//	format   = "text"
//
//	[limits]
//	max_input_bytes = 8388608
//	max_candidates  = 8192
//	max_neighbors   = 4096
//	max_solutions   = 1024
type fileConfig struct {
	Wordlist string       `toml:"wordlist"`
	Workers  int          `toml:"workers"`
	Format   string       `toml:"format"`
	Limits   limitsConfig `toml:"limits"`

	// path is where the config was read from; empty if none was found.
	path string
	// unknown lists keys present in the file that fileConfig does not use.
	unknown []string
}

type limitsConfig struct {
	MaxInputBytes int64 `toml:"max_input_bytes"`
	MaxCandidates int   `toml:"max_candidates"`
	MaxNeighbors  int   `toml:"max_neighbors"`
	MaxSolutions  int   `toml:"max_solutions"`
}

// defaultConfigPath returns config.toml inside configDir.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// loadConfig reads the config file. An explicit path must exist; the default
// path is optional and a missing file yields an empty config.
func loadConfig(explicit string) (*fileConfig, error) {
	path := explicit
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return &fileConfig{}, nil
		}
		path = p
	}

	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if explicit == "" && errors.Is(err, fs.ErrNotExist) {
			return &fileConfig{}, nil
		}
		return nil, fwerrors.Wrap(fwerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg.path = path
	for _, k := range md.Undecoded() {
		cfg.unknown = append(cfg.unknown, k.String())
	}
	return &cfg, nil
}

// runFlags are the options shared by solve and stats.
type runFlags struct {
	config        string
	workers       int
	maxInputBytes int64
	maxCandidates int
	maxNeighbors  int
	maxSolutions  int
}

// merge fills every option the user did not set on the command line from
// cfg. changed reports whether a flag was set explicitly.
func (f *runFlags) merge(cfg *fileConfig, changed func(name string) bool) {
	if !changed("workers") && cfg.Workers != 0 {
		f.workers = cfg.Workers
	}
	if !changed("max-input-bytes") && cfg.Limits.MaxInputBytes != 0 {
		f.maxInputBytes = cfg.Limits.MaxInputBytes
	}
	if !changed("max-candidates") && cfg.Limits.MaxCandidates != 0 {
		f.maxCandidates = cfg.Limits.MaxCandidates
	}
	if !changed("max-neighbors") && cfg.Limits.MaxNeighbors != 0 {
		f.maxNeighbors = cfg.Limits.MaxNeighbors
	}
	if !changed("max-solutions") && cfg.Limits.MaxSolutions != 0 {
		f.maxSolutions = cfg.Limits.MaxSolutions
	}
}

// options converts the flags into pipeline options for source.
func (f *runFlags) options(source string) pipeline.Options {
	return pipeline.Options{
		Source:        source,
		Workers:       f.workers,
		MaxInputBytes: f.maxInputBytes,
		MaxCandidates: f.maxCandidates,
		MaxNeighbors:  f.maxNeighbors,
		MaxSolutions:  f.maxSolutions,
	}
}

// resolveSource picks the word list: the argument, then the config file,
// then the default name in the working directory.
func resolveSource(args []string, cfg *fileConfig) string {
	switch {
	case len(args) > 0:
		return args[0]
	case cfg.Wordlist != "":
		return expandHome(cfg.Wordlist)
	default:
		return pipeline.DefaultSource
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
