package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional on-disk configuration for the run command,
// merged under any flags the user passed explicitly.
type fileConfig struct {
	ScrollbackLines int `yaml:"scrollback_lines"`
	TargetFramerate int `yaml:"target_framerate"`
}

// loadFileConfig reads path if it exists. A missing file is not an
// error; it just means nothing overrides the flag defaults.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
