package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads the .env file from the project root in dev, falling back to
// the working directory for packaged builds that ship a .env next to the
// executable.
func LoadEnv() error {
	if root, err := FindProjectRoot(); err == nil {
		return godotenv.Load(filepath.Join(root, ".env"))
	}
	return godotenv.Load()
}
