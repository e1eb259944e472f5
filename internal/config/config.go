// Package config reads the repository's ".jit/config" file: a flat
// "key = value" text file, the same textual-format philosophy spec.md §6
// recommends for the index and refs files. Today it resolves exactly one
// setting — the commit author identity — replacing
// original_source/main.cpp's hardcoded "pharoak" author string.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const defaultAuthor = "unknown"

// Config is the parsed key=value contents of a .jit/config file.
type Config struct {
	values map[string]string
}

// Load reads path if it exists; a missing file is not an error, it just
// yields an empty Config that falls back to defaults.
func Load(path string) (*Config, error) {
	c := &Config{values: map[string]string{}}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		c.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: scan %s: %w", path, err)
	}
	return c, nil
}

// Author resolves the commit author identity: config's "user.name", then
// the JIT_AUTHOR environment variable, then "unknown".
func (c *Config) Author() string {
	if name, ok := c.values["user.name"]; ok && name != "" {
		return name
	}
	if name := os.Getenv("JIT_AUTHOR"); name != "" {
		return name
	}
	return defaultAuthor
}
