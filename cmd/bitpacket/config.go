package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type config struct {
	Input    string
	Format   string
	Tree     bool
	LogLevel string
}

type fileConfig struct {
	Input    string `toml:"input"`
	Format   string `toml:"format"`
	Tree     bool   `toml:"tree"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Input:    "-",
		Format:   "text",
		LogLevel: "warn",
	}
}

// loadConfig overlays the keys defined in the TOML file at path onto cfg.
func loadConfig(path string, cfg config) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}

	if meta.IsDefined("tree") {
		cfg.Tree = raw.Tree
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, validate(cfg)
}

func validate(cfg config) error {
	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want text|json|yaml)", cfg.Format)
	}

	if cfg.Input == "" {
		return fmt.Errorf("input path is empty")
	}

	return nil
}
