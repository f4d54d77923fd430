package resume

import (
	"os"

	"github.com/resumeforge/resumeforge/pkg/errors"
)

// Read loads, validates, and normalizes a resume document from disk,
// picking the format from the file extension.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "resume file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}
	return Load(data, FormatForPath(path))
}

// Load decodes, validates, and normalizes an in-memory document.
func Load(data []byte, format Format) (*Document, error) {
	root, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	if root.Len() == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "resume document is empty")
	}
	if err := Validate(root); err != nil {
		return nil, err
	}
	return Normalize(root)
}
