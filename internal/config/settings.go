package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/joe/file-helpers/pkg/filesystem"
)

// Settings is the optional YAML settings file. Example:
//
//	sftp:
//	  known_hosts: ~/.ssh/known_hosts
//	  identity_files: [~/.ssh/deploy_ed25519]
//	  dial_timeout: 30s
//	  strict_host_keys: true
type Settings struct {
	SFTP SFTPSettings `yaml:"sftp"`
}

// SFTPSettings configures SSH connections for sftp:// paths.
type SFTPSettings struct {
	KnownHosts     string        `yaml:"known_hosts"`
	IdentityFiles  []string      `yaml:"identity_files"`
	DialTimeout    time.Duration `yaml:"dial_timeout"`
	StrictHostKeys bool          `yaml:"strict_host_keys"`
}

// DefaultSettingsPath returns <user config dir>/file-helpers/config.yaml, or ""
// when there is no user config directory.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, ProgramName, "config.yaml")
}

// LoadSettings reads the settings file at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func LoadSettings(path string) (Settings, error) {
	var settings Settings

	explicit := path != ""
	if !explicit {
		path = DefaultSettingsPath()
		if path == "" {
			return settings, nil
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 - settings path is chosen by the user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return settings, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if settings.SFTP.DialTimeout < 0 {
		return settings, fmt.Errorf("invalid settings %s: dial_timeout must not be negative", path) //nolint:err113 // Validation error with actual value
	}

	return settings, nil
}

// SSHOptions converts the SFTP settings, expanding a leading "~/" in paths.
func (s Settings) SSHOptions() filesystem.SSHOptions {
	identityFiles := make([]string, 0, len(s.SFTP.IdentityFiles))
	for _, file := range s.SFTP.IdentityFiles {
		identityFiles = append(identityFiles, expandHome(file))
	}

	return filesystem.SSHOptions{
		KnownHostsFile: expandHome(s.SFTP.KnownHosts),
		IdentityFiles:  identityFiles,
		DialTimeout:    s.SFTP.DialTimeout,
		StrictHostKeys: s.SFTP.StrictHostKeys,
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
