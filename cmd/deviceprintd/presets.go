package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// presetsFile is the YAML shape for caller-defined presets:
//
//	presets:
//	  checkout:
//	    - userAgent
//	    - language
//	    - canvas
type presetsFile struct {
	Presets map[string][]string `yaml:"presets"`
}

func loadPresets(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets file %s: %w", path, err)
	}

	for name, list := range file.Presets {
		if len(list) == 0 {
			return nil, fmt.Errorf("preset %q in %s lists no signals", name, path)
		}
	}
	return file.Presets, nil
}
