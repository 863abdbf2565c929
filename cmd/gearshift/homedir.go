package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// homeDir returns the user's home directory or an error.
func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return home, nil
}

// gearshiftDir returns ~/.gearshift, creating it if needed.
func gearshiftDir() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".gearshift")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// defaultCatalogPath returns the default location of the catalog document.
func defaultCatalogPath() (string, error) {
	dir, err := gearshiftDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "modes.yaml"), nil
}

// decisionLogPath returns the location of the decision log database.
func decisionLogPath() (string, error) {
	dir, err := gearshiftDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "decisions.db"), nil
}
