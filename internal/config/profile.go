package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"shopping-path-service/internal/domain"
	"strings"

	"gopkg.in/yaml.v3"
)

type profileFile struct {
	SpecialCorridor string `yaml:"special_corridor"`
	Corridors       []struct {
		Name     string `yaml:"name"`
		Distance int    `yaml:"distance"`
	} `yaml:"corridors"`
}

// LoadProfile reads a store profile from YAML. An empty path returns the
// default profile of the reference store.
func LoadProfile(path string) (domain.StoreProfile, error) {
	if strings.TrimSpace(path) == "" {
		return domain.DefaultStoreProfile(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("load profile: read %q: %w", path, err)
	}

	p, err := ParseProfile(b)
	if err != nil {
		return domain.StoreProfile{}, fmt.Errorf("load profile %q: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes and validates a YAML store profile.
func ParseProfile(b []byte) (domain.StoreProfile, error) {
	var pf profileFile

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		return domain.StoreProfile{}, fmt.Errorf("parse profile: %w", err)
	}

	special := strings.TrimSpace(pf.SpecialCorridor)
	if special == "" {
		return domain.StoreProfile{}, errors.New("parse profile: special_corridor is required")
	}

	profile := domain.StoreProfile{
		SpecialCorridor: special,
		Distances:       make(map[string]int, len(pf.Corridors)),
	}
	for i, c := range pf.Corridors {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return domain.StoreProfile{}, fmt.Errorf("parse profile: corridor #%d has no name", i+1)
		}
		if _, dup := profile.Distances[name]; dup {
			return domain.StoreProfile{}, fmt.Errorf("parse profile: corridor %q listed twice", name)
		}
		profile.Distances[name] = c.Distance
	}

	return profile, nil
}
