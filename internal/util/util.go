package util

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// InitDir initializes a directory with the given mode
func InitDir(path string, mode fs.FileMode) error {
	expandedDir := os.ExpandEnv(path)
	fullPath := filepath.Dir(expandedDir)
	return os.MkdirAll(fullPath, mode)
}

// GetString returns the string value pointed to by value, or an empty string if value is nil.
func GetString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func CheckError(err error) {
	// For now just delegate to Cobra's CheckErr
	cobra.CheckErr(err)
}
