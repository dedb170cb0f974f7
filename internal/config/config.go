package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/songe/minesweeper/internal/mines"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

type Config struct {
	Mode     string           `json:"mode" yaml:"mode"`
	LogFile  string           `json:"log_file" yaml:"log_file"`
	LogLevel string           `json:"log_level" yaml:"log_level"`
	Seed     uint64           `json:"seed" yaml:"seed"`
	Game     mines.GameParams `json:"game" yaml:"game"`
}

func Default() Config {
	return Config{
		Mode: ModeProduction,
		Game: mines.DefaultParams(),
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":       c.Mode,
		"log_file":   c.LogFile,
		"log_level":  c.LogLevel,
		"seed":       c.Seed,
		"width":      c.Game.Width,
		"height":     c.Game.Height,
		"mine_count": c.Game.MineCount,
		"forgiving":  c.Game.Forgiving,
	}
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

// Level is LogLevel if set, otherwise debug in development and info in
// production.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel != "" {
		return logrus.ParseLevel(c.LogLevel)
	}
	if c.Development() {
		return logrus.DebugLevel, nil
	}
	return logrus.InfoLevel, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// ReadConfig fills config from a .json, .yaml or .yml file. Keys missing
// from the file keep their current values.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, config)
	default:
		err = json.Unmarshal(b, config)
	}
	if err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

// Load reads the defaults, then the file at path if any, then the
// environment.
func Load(path string) (Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, &config); err != nil {
			return config, err
		}
	}
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok && development != "0" {
		config.Mode = ModeDevelopment
	}
	if logFile, ok := os.LookupEnv("TILES_LOG_FILE"); ok {
		config.LogFile = logFile
	}
	return config, config.Validate()
}
