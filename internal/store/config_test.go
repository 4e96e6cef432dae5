package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLoadConfig_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("TASKBOARD_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PageSize != 0 || cfg.Strict || cfg.DB != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestConfigSave_RoundTripKeepsBackup(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("TASKBOARD_CONFIG_DIR", cfgDir)

	if _, err := (&Config{PageSize: 5}).Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	path, err := (&Config{PageSize: 12, Strict: true, LogLevel: "debug"}).Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != filepath.Join(cfgDir, "config.json") {
		t.Fatalf("path: got %q", path)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PageSize != 12 || !cfg.Strict || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	bak, err := os.ReadFile(filepath.Join(cfgDir, "config.json.bak"))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	var prev Config
	if err := json.Unmarshal(bak, &prev); err != nil {
		t.Fatalf("backup unparseable: %v", err)
	}
	if prev.PageSize != 5 {
		t.Fatalf("backup page size: got %d want 5", prev.PageSize)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("TASKBOARD_CONFIG_DIR", cfgDir)
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte("{"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestConfigSave_ConcurrentWriters(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("TASKBOARD_CONFIG_DIR", cfgDir)

	if _, err := (&Config{PageSize: 8}).Save(); err != nil {
		t.Fatalf("Save(seed): %v", err)
	}

	const n = 32
	errCh := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			cfg, err := LoadConfig()
			if err != nil {
				errCh <- err
				return
			}
			cfg.PageSize = i + 1
			cfg.DB = fmt.Sprintf("/tmp/tasks-%d.sqlite", i)
			if _, err := cfg.Save(); err != nil {
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("concurrent Save: %v", err)
	}
	if t.Failed() {
		return
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config.json: %v", err)
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("config.json corrupted/unparseable: %v\nraw:\n%s", err, string(raw))
	}

	ents, err := os.ReadDir(cfgDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, "config.json.") && strings.HasSuffix(name, ".tmp") {
			t.Fatalf("leftover temp file: %s", name)
		}
	}
}

func TestDiscoverDir_WalksUp(t *testing.T) {
	root := t.TempDir()
	local := filepath.Join(root, ".taskboard")
	nested := filepath.Join(root, "a", "b")
	for _, d := range []string{local, nested} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	got, ok := DiscoverDir(nested)
	if !ok || got != local {
		t.Fatalf("DiscoverDir: got %q %v want %q", got, ok, local)
	}
}

func TestConfigSet(t *testing.T) {
	cases := []struct {
		key, value string
		want       Config
		wantErr    bool
	}{
		{key: "db", value: " /tmp/a.sqlite ", want: Config{DB: "/tmp/a.sqlite"}},
		{key: "page-size", value: "12", want: Config{PageSize: 12}},
		{key: "pageSize", value: "3", want: Config{PageSize: 3}},
		{key: "page-size", value: "0", wantErr: true},
		{key: "page-size", value: "ten", wantErr: true},
		{key: "strict", value: "true", want: Config{Strict: true}},
		{key: "strict", value: "sometimes", wantErr: true},
		{key: "log-level", value: "WARN", want: Config{LogLevel: "warn"}},
		{key: "log-level", value: "loud", wantErr: true},
		{key: "log-file", value: "/tmp/tb.log", want: Config{LogFile: "/tmp/tb.log"}},
		{key: "color", value: "blue", wantErr: true},
	}
	for _, tc := range cases {
		var cfg Config
		err := cfg.Set(tc.key, tc.value)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Set(%q, %q): expected error", tc.key, tc.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Set(%q, %q): %v", tc.key, tc.value, err)
		}
		if cfg != tc.want {
			t.Fatalf("Set(%q, %q): got %+v want %+v", tc.key, tc.value, cfg, tc.want)
		}
	}

	var unknown UnknownKeyError
	if err := (&Config{}).Set("color", "x"); !errors.As(err, &unknown) || unknown.Key != "color" {
		t.Fatalf("unknown key: got %v", err)
	}

	cfg := Config{PageSize: 9, Strict: true}
	for _, k := range []string{"page-size", "strict"} {
		if err := cfg.Set(k, ""); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
	if cfg != (Config{}) {
		t.Fatalf("unset: got %+v", cfg)
	}
}
