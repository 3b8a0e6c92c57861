package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vaughan0/go-ini"
)

const configFile = "advent.ini"

// config is read from advent.ini in the working directory:
//
//	[inputs]
//	dir = /path/to/puzzle/inputs
type config struct {
	inputDir string
}

// loadConfig reads the named ini file. A file that doesn't exist yields the
// zero config, meaning inputs are read from the working directory.
func loadConfig(name string) (config, error) {
	var cfg config
	file, err := ini.LoadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	if dir, ok := file.Get("inputs", "dir"); ok {
		if dir == "" {
			return cfg, fmt.Errorf("config (%s): inputs.dir is empty", name)
		}
		cfg.inputDir = dir
	}
	return cfg, nil
}

// inputPath returns the default input file for the given day, dayN.txt,
// inside the configured input directory.
func (cfg config) inputPath(day int) string {
	return filepath.Join(cfg.inputDir, fmt.Sprintf("day%d.txt", day))
}
