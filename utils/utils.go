package utils

import (
	"log"
	"os"
	"path/filepath"
)

func FileExist(filePath string) bool {
	var err error

	if _, err = os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	if err != nil {
		log.Panic(err)
	}

	return true
}

// WriteFileIfNotExist writes content to filePath unless the file is already there,
// creating the parent directory if needed.
func WriteFileIfNotExist(filePath string, content []byte) error {
	if FileExist(filePath) {
		return nil
	}

	err := CreateDirIfNotExist(filepath.Dir(filePath))
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, content, 0600)
}

func CreateDirIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	return nil
}
