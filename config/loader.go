package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadProfiles reads and validates a profiles file.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	v := validator.New()
	if err := v.Struct(f); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	seen := map[string]bool{}
	for _, p := range f.Profiles {
		if seen[p.Name] {
			return nil, fmt.Errorf("%s: duplicate profile %q", path, p.Name)
		}
		seen[p.Name] = true
	}
	return f.Profiles, nil
}

// Select returns the profile with the given name; fallback to the first
// profile when name is empty.
func Select(profiles []Profile, name string) (Profile, error) {
	if name == "" {
		if len(profiles) == 0 {
			return Profile{}, fmt.Errorf("no profiles defined")
		}
		return profiles[0], nil
	}
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown profile %q", name)
}
