// Package config resolves user defaults for dirclip flags from the
// environment and an optional dotenv-style file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys, also accepted inside the config file.
const (
	EnvConfigFile     = "DIRCLIP_CONFIG"
	EnvIgnoreFile     = "DIRCLIP_IGNORE_FILE"
	EnvX11            = "DIRCLIP_X11"
	EnvMaxSizeKB      = "DIRCLIP_MAX_SIZE_KB"
	EnvDebug          = "DIRCLIP_DEBUG"
	EnvGlobalExcludes = "DIRCLIP_GLOBAL_EXCLUDES"
)

var keys = []string{EnvIgnoreFile, EnvX11, EnvMaxSizeKB, EnvDebug, EnvGlobalExcludes}

// Defaults are the values flags start from before the command line is parsed.
type Defaults struct {
	IgnoreFile     string
	X11            bool
	MaxFileSizeKB  int
	Debug          bool
	GlobalExcludes bool
}

// DefaultPath returns $DIRCLIP_CONFIG, or config.env under the user config
// directory. It returns "" when neither can be determined.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigFile)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dirclip", "config.env")
}

// Load reads path (when it exists) without touching the process environment,
// then lets environment variables override it.
func Load(path string) (Defaults, error) {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Defaults{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}
	return parse(values)
}

func parse(values map[string]string) (Defaults, error) {
	var d Defaults
	var err error

	d.IgnoreFile = strings.TrimSpace(values[EnvIgnoreFile])
	if d.X11, err = parseBool(values, EnvX11); err != nil {
		return Defaults{}, err
	}
	if d.Debug, err = parseBool(values, EnvDebug); err != nil {
		return Defaults{}, err
	}
	if d.GlobalExcludes, err = parseBool(values, EnvGlobalExcludes); err != nil {
		return Defaults{}, err
	}

	if raw := strings.TrimSpace(values[EnvMaxSizeKB]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Defaults{}, fmt.Errorf("invalid value for %s: %q", EnvMaxSizeKB, raw)
		}
		d.MaxFileSizeKB = n
	}
	return d, nil
}

func parseBool(values map[string]string, key string) (bool, error) {
	raw := strings.TrimSpace(values[key])
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q", key, raw)
	}
	return b, nil
}
