package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Config holds user preferences read from ~/.alayoutrc, a plain key=value
// file. Missing file or unknown keys are ignored.
type Config struct {
	SaveDirectory   string
	IncludeMetadata bool
	OverlapWarnings bool
}

func loadConfig() *Config {
	config := &Config{
		SaveDirectory:   "",
		IncludeMetadata: false,
		OverlapWarnings: true,
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".alayoutrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "metadata", "include_metadata":
			config.IncludeMetadata = strings.ToLower(value) == "true"
		case "overlapwarnings", "overlap_warnings":
			config.OverlapWarnings = strings.ToLower(value) == "true"
		}
	}

	return config
}

// SavePath resolves an export filename against the configured save
// directory, creating the directory on first use.
func (c *Config) SavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
