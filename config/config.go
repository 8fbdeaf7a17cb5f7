package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const AppName = "poddash"

type SSHConfig struct {
	User           string   `koanf:"user"`
	PasswordFile   string   `koanf:"password-file"`
	PasswordLength int      `koanf:"password-length"`
	SSHDConfig     string   `koanf:"sshd-config"`
	StartCommand   []string `koanf:"start-command"`
}

type FileServerConfig struct {
	Dir     string  `koanf:"dir"`
	Port    int     `koanf:"port"`
	Rate    float64 `koanf:"rate"`
	Burst   int     `koanf:"burst"`
	LogFile string  `koanf:"log-file"`
}

type Config struct {
	Title       string           `koanf:"title"`
	Tagline     string           `koanf:"tagline"`
	ClampScroll bool             `koanf:"clamp-scroll"`
	SSH         SSHConfig        `koanf:"ssh"`
	FileServer  FileServerConfig `koanf:"fileserver"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Title:       "Pod Dashboard",
		Tagline:     "your pod at a glance",
		ClampScroll: true,
		SSH: SSHConfig{
			User:           "root",
			PasswordFile:   DefaultPasswordPath(),
			PasswordLength: 16,
			SSHDConfig:     "/etc/ssh/sshd_config",
			StartCommand:   []string{"service", "ssh", "start"},
		},
		FileServer: FileServerConfig{
			Dir:     "/workspace",
			Port:    8080,
			Rate:    50,
			Burst:   20,
			LogFile: filepath.Join(os.TempDir(), AppName+"-fileserver.log"),
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.SSH.PasswordLength < 8 {
		return fmt.Errorf("ssh.password-length must be at least 8, got %d", c.SSH.PasswordLength)
	}
	if c.SSH.User == "" {
		return fmt.Errorf("ssh.user must not be empty")
	}
	if c.FileServer.Port <= 0 || c.FileServer.Port > 65535 {
		return fmt.Errorf("fileserver.port out of range: %d", c.FileServer.Port)
	}
	if c.FileServer.Rate <= 0 {
		return fmt.Errorf("fileserver.rate must be positive, got %v", c.FileServer.Rate)
	}
	if c.FileServer.Burst < 1 {
		return fmt.Errorf("fileserver.burst must be at least 1, got %d", c.FileServer.Burst)
	}
	return nil
}

// loadFile parses a YAML file into target, silently skipping missing files
// so callers don't need to check existence first. Keys absent from the file
// keep the value already in target.
func loadFile(path string, target any) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return err
	}
	return k.Unmarshal("", target)
}

// DefaultPath returns $XDG_CONFIG_HOME/poddash/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// DefaultPasswordPath returns the location of the generated SSH password.
func DefaultPasswordPath() string {
	return filepath.Join(xdg.StateHome, AppName, "ssh-password")
}
