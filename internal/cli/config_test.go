package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/fivewords/pkg/errors"
	"github.com/matzehuels/fivewords/pkg/pipeline"
)

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", appName)
	if dir != expected {
		t.Errorf("configDir() = %q, want %q", dir, expected)
	}
}

func TestConfigDirXDG(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom-config")
	t.Setenv("XDG_CONFIG_HOME", custom)

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("configDir() with XDG_CONFIG_HOME = %q, want %q", dir, want)
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.path != "" || cfg.Workers != 0 || cfg.Wordlist != "" {
		t.Errorf("missing default config should be empty, got %+v", cfg)
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte("workers = 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Workers != 6 || cfg.path != path {
		t.Errorf("loadConfig() = %+v, want workers 6 from %s", cfg, path)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.toml", `
wordlist = "~/dict/words.txt"
workers = 4
format = "json"
colour = "blue"

[limits]
max_input_bytes = 1024
max_candidates = 100
max_neighbors = 50
max_solutions = 10
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	want := limitsConfig{MaxInputBytes: 1024, MaxCandidates: 100, MaxNeighbors: 50, MaxSolutions: 10}
	if cfg.Limits != want {
		t.Errorf("Limits = %+v, want %+v", cfg.Limits, want)
	}
	if cfg.Wordlist != "~/dict/words.txt" || cfg.Workers != 4 || cfg.Format != "json" {
		t.Errorf("loadConfig() = %+v", cfg)
	}
	if !slices.Equal(cfg.unknown, []string{"colour"}) {
		t.Errorf("unknown = %v, want [colour]", cfg.unknown)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing explicit file", filepath.Join(t.TempDir(), "none.toml")},
		{"malformed toml", writeFile(t, "bad.toml", "workers = [\n")},
		{"wrong type", writeFile(t, "type.toml", "workers = \"many\"\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestRunFlagsMerge(t *testing.T) {
	cfg := &fileConfig{
		Workers: 4,
		Limits:  limitsConfig{MaxInputBytes: 1, MaxCandidates: 2, MaxNeighbors: 3, MaxSolutions: 4},
	}
	f := runFlags{workers: 8, maxSolutions: 99}
	changed := func(name string) bool { return name == "workers" || name == "max-solutions" }

	f.merge(cfg, changed)

	want := runFlags{workers: 8, maxInputBytes: 1, maxCandidates: 2, maxNeighbors: 3, maxSolutions: 99}
	if f != want {
		t.Errorf("merge() = %+v, want %+v", f, want)
	}

	opts := f.options("list.txt")
	if opts.Source != "list.txt" || opts.Workers != 8 || opts.MaxSolutions != 99 || opts.MaxInputBytes != 1 {
		t.Errorf("options() = %+v", opts)
	}
}

func TestResolveSource(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		name string
		args []string
		cfg  fileConfig
		want string
	}{
		{"argument wins", []string{"a.txt"}, fileConfig{Wordlist: "b.txt"}, "a.txt"},
		{"config", nil, fileConfig{Wordlist: "b.txt"}, "b.txt"},
		{"config home", nil, fileConfig{Wordlist: "~/b.txt"}, filepath.Join(home, "b.txt")},
		{"default", nil, fileConfig{}, pipeline.DefaultSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveSource(tt.args, &tt.cfg); got != tt.want {
				t.Errorf("resolveSource() = %q, want %q", got, tt.want)
			}
		})
	}
}
