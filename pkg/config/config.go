// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config handles assassin's configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// FilePermissions is used for every file and directory written by assassin.
const FilePermissions = 0755

var (
	// Directory is the path to the directory where assassin keeps its
	// configuration.
	Directory = filepath.Join(xdg.ConfigHome, "assassin")

	// Path is the default location of the configuration file.
	Path = filepath.Join(Directory, "config.yaml")
)

// Config holds the defaults used by the play, simulate and ring commands.
// Command line flags take precedence over these values.
type Config struct {
	// Roster is the file to read assassins from when none is given.
	Roster string `yaml:"roster"`

	// Shuffle the roster before the kill ring is formed.
	Shuffle bool `yaml:"shuffle"`

	// Seed used when shuffling. Zero means a time based seed.
	Seed int64 `yaml:"seed"`

	// Color enables coloured console output.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Color: true,
	}
}

// Load reads the configuration file at path on top of Default. A missing
// file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return config, nil
	case err != nil:
		return config, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}

	// Relative roster paths are relative to the configuration file.
	if config.Roster != "" && !filepath.IsAbs(config.Roster) {
		config.Roster = filepath.Join(filepath.Dir(path), config.Roster)
	}

	return config, nil
}

// Save writes config to path, creating its directory if needed.
func Save(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), FilePermissions); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return os.WriteFile(path, data, FilePermissions)
}
