package gen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// generatedRE matches the line Go tools use to recognize generated files.
var generatedRE = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$`)

// Write writes the generated files, creating directories as needed, and
// removes stale files left by an earlier run. A stale file that does not
// carry the generated-code line is left alone.
func (o *Output) Write() error {
	for _, f := range o.Files {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return NewGenerationError(f.Path, "create directory", err)
		}
		if err := os.WriteFile(f.Path, f.Source, 0o644); err != nil {
			return NewGenerationError(f.Path, "write file", err)
		}
	}
	for _, path := range o.Stale {
		if err := removeGenerated(path); err != nil {
			return NewGenerationError(path, "remove stale file", err)
		}
	}
	return nil
}

func removeGenerated(path string) error {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return err
	case !generatedRE.Match(data):
		return nil
	}
	return os.Remove(path)
}
