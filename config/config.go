// Package config loads the optional YAML settings for a report run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultSFTPTimeout = 30 * time.Second

type Config struct {
	LogLevel string `yaml:"log_level"`
	Output   Output `yaml:"output"`
	SFTP     *SFTP  `yaml:"sftp"`
}

// Output lists extra files written alongside the stdout report. Empty means skip.
type Output struct {
	PDF string `yaml:"pdf"`
	CSV string `yaml:"csv"`
}

type SFTP struct {
	Server         string        `yaml:"server"`
	Username       string        `yaml:"username"`
	Password       string        `yaml:"password"`
	PrivateKeyFile string        `yaml:"private_key_file"`
	KnownHostsFile string        `yaml:"known_hosts_file"`
	Timeout        time.Duration `yaml:"timeout"`
}

func Default() Config {
	return Config{
		LogLevel: log.InfoLevel.String(),
	}
}

// Load reads path, or returns the defaults when path is empty.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if cfg.SFTP != nil && cfg.SFTP.Timeout == 0 {
		cfg.SFTP.Timeout = defaultSFTPTimeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.SFTP == nil {
		return nil
	}

	switch {
	case c.SFTP.Server == "":
		return errors.New("sftp.server is required")
	case c.SFTP.Username == "":
		return errors.New("sftp.username is required")
	case c.SFTP.Password == "" && c.SFTP.PrivateKeyFile == "":
		return errors.New("sftp needs a password or a private_key_file")
	case c.SFTP.KnownHostsFile == "":
		return errors.New("sftp.known_hosts_file is required to verify the server host key")
	case c.SFTP.Timeout < 0:
		return fmt.Errorf("sftp.timeout must not be negative, got %v", c.SFTP.Timeout)
	}

	return nil
}
