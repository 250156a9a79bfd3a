package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads .env files into the process environment without overriding
// variables that are already set. A missing file is not an error.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
