package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SaveDirectory string `yaml:"save_directory"`
	GridWidth     int    `yaml:"grid_width"`
	GridHeight    int    `yaml:"grid_height"`
	MaxUndo       int    `yaml:"max_undo"`
	TouchSnap     bool   `yaml:"touch_snap"`
	UnicodeLines  bool   `yaml:"unicode_lines"`
	FreeformChar  string `yaml:"freeform_char"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		GridWidth:    defaultGridWidth,
		GridHeight:   defaultGridHeight,
		MaxUndo:      defaultMaxUndo,
		FreeformChar: "X",
		LogLevel:     "info",
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "asciiflow", "config.yaml")
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	config.SaveDirectory = expandPath(config.SaveDirectory)
	config.LogFile = expandPath(config.LogFile)
	if config.GridWidth <= 0 {
		config.GridWidth = defaultGridWidth
	}
	if config.GridHeight <= 0 {
		config.GridHeight = defaultGridHeight
	}
	if config.MaxUndo <= 0 {
		config.MaxUndo = defaultMaxUndo
	}
	return config, nil
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

// FreeformRune is the initial stamp of the freeform tool.
func (c *Config) FreeformRune() rune {
	if r, size := utf8.DecodeRuneInString(c.FreeformChar); size > 0 && r != utf8.RuneError {
		return r
	}
	return 'X'
}

func (c *Config) newDiagram() *Diagram {
	return NewDiagram(c.GridWidth, c.GridHeight, c.MaxUndo)
}
