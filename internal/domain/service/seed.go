package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedMap struct {
	Name  string `yaml:"name"`
	Emote string `yaml:"emote"`
}

// seedFile is the initial content loaded into empty tables on start-up.
type seedFile struct {
	Maps []seedMap `yaml:"maps"`
	Jobs []string  `yaml:"jobs"`
}

func readSeedFile(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}
