package workspace

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/danieljhkim/projswitch/internal/fsops"
)

// Source supplies raw workspace definitions.
type Source interface {
	// Load returns all definitions. A missing or unparseable source yields
	// an empty slice; the error, when non-nil, is advisory (log and
	// continue) and never aborts the run.
	Load() ([]Definition, error)
}

// FileSource implements Source by reading a JSONC definitions file.
type FileSource struct {
	fs   fsops.FS
	path string
}

// NewFileSource creates a FileSource reading from path.
func NewFileSource(fs fsops.FS, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

// Load reads and parses the definitions file. Comments and trailing commas
// are tolerated (the file is user-edited).
func (s *FileSource) Load() ([]Definition, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	var defs []Definition
	if err := json.Unmarshal(jsonc.ToJSON(data), &defs); err != nil {
		return nil, fmt.Errorf("failed to parse definitions file: %w", err)
	}

	return defs, nil
}
