package path

import (
	"os"
	"path/filepath"
)

// GetProjectRoot walks up from the working directory until it finds go.mod.
func GetProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic("get working directory: " + err.Error())
	}

	for {
		_, err = os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			panic("project root (go.mod) not found")
		}

		dir = parent
	}
}

func MigrationsDir() string {
	return filepath.Join(GetProjectRoot(), "migrations")
}
