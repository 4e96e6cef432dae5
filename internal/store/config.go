package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config is the optional user config file. Zero values mean "use the default".
type Config struct {
	// DB is the SQLite file tasks are loaded from and saved to.
	DB string `json:"db,omitempty"`

	PageSize int  `json:"pageSize,omitempty"`
	Strict   bool `json:"strict,omitempty"`

	// LogLevel is a logrus level name ("debug", "info", "warn", ...).
	LogLevel string `json:"logLevel,omitempty"`
	// LogFile receives logs while the TUI owns the terminal.
	LogFile string `json:"logFile,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.taskboard).
	if v := strings.TrimSpace(os.Getenv("TASKBOARD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskboard"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig returns an empty config when the file does not exist.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigKeys are the keys `taskboard config set` accepts, in display order.
var ConfigKeys = []string{"db", "page-size", "strict", "log-level", "log-file"}

type UnknownKeyError struct {
	Key string
}

func (e UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown config key: %q (known: %s)", e.Key, strings.Join(ConfigKeys, ", "))
}

// Set parses value into the field named key. An empty value resets the field.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "db":
		c.DB = value
	case "page-size", "pagesize":
		if value == "" {
			c.PageSize = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("page-size: expected a positive integer, got %q", value)
		}
		c.PageSize = n
	case "strict":
		if value == "" {
			c.Strict = false
			return nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict: expected true or false, got %q", value)
		}
		c.Strict = b
	case "log-level", "loglevel":
		if value != "" {
			if _, err := logrus.ParseLevel(value); err != nil {
				return fmt.Errorf("log-level: %w", err)
			}
		}
		c.LogLevel = strings.ToLower(value)
	case "log-file", "logfile":
		c.LogFile = value
	default:
		return UnknownKeyError{Key: key}
	}
	return nil
}

// Save writes c to ConfigPath and returns that path. The previous contents are kept in
// config.json.bak.
func (c *Config) Save() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	b = append(b, '\n')

	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		if err := replaceFile(path+".bak", prev, 0o644); err != nil {
			return "", fmt.Errorf("backup config: %w", err)
		}
	}
	if err := replaceFile(path, b, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// replaceFile swaps in new contents through a temp file in the same directory, so a
// concurrent reader sees the old file or the new one, never a mix.
func replaceFile(path string, b []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Chmod(perm); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// DiscoverDir walks up from start looking for a project-local .taskboard directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".taskboard")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDBPath prefers a project-local .taskboard/tasks.sqlite and falls back to the
// config dir.
func DefaultDBPath() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		if found, ok := DiscoverDir(cwd); ok {
			return filepath.Join(found, dbFileName), nil
		}
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}
