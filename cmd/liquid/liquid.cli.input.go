package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData decodes render data from a file or an inline JSON string.
// Files ending in .json are decoded as JSON, everything else as YAML.
func loadData(jsonStr, filePath string) (map[string]any, error) {
	result := make(map[string]any)

	switch {
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(filepath.Ext(filePath), ExtJSON) {
			err = json.Unmarshal(data, &result)
		} else {
			err = yaml.Unmarshal(data, &result)
		}
		if err != nil {
			return nil, err
		}

	case jsonStr != "":
		if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
			return nil, err
		}
	}

	if result == nil {
		result = make(map[string]any)
	}
	return result, nil
}
