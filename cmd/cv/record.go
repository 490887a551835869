package main

import (
	"fmt"
	"os"

	"github.com/ducban/minimalist-cv/internal/profile"
)

// loadRecord resolves the record for a command: the --profile flag wins,
// then the CV_PROFILE environment variable, then the built-in record.
func loadRecord() (*profile.Profile, error) {
	path := profilePath
	if path == "" {
		path = os.Getenv("CV_PROFILE")
	}
	if path == "" {
		return profile.Default(), nil
	}

	record, err := profile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", path, err)
	}
	return record, nil
}
