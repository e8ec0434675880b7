package errors

import (
	"os"
	"path/filepath"
)

// ValidateFigureName validates a figure base name.
// The name becomes the output file stem, so it must be a simple name
// without path components.
func ValidateFigureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "figure name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "figure name too long (max 256 characters)")
	}

	// Must be a simple filename, not a path
	if filepath.Base(name) != name {
		return New(ErrCodeInvalidInput, "figure name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidInput, "figure name cannot be %q", name)
	}

	return nil
}

// ValidateDestDir validates that dir exists, is a directory, and is
// writable by the current process. The writability probe creates and
// removes a temporary file, so a passing check can still race with a
// permission change before the real output files are written.
func ValidateDestDir(dir string) error {
	if dir == "" {
		return New(ErrCodeDestUnwritable, "destination directory cannot be empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return Wrap(ErrCodeDestUnwritable, err, "destination %q does not exist", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeDestUnwritable, "destination %q is not a directory", dir)
	}

	f, err := os.CreateTemp(dir, ".pubfig-probe-*")
	if err != nil {
		return Wrap(ErrCodeDestUnwritable, err, "destination %q is not writable", dir)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)

	return nil
}

// ValidateWidthScale validates the fraction of a category slot used by
// the bars of a group. Valid values are in (0, 1].
func ValidateWidthScale(ws float64) error {
	if ws <= 0 || ws > 1 {
		return New(ErrCodeInvalidWidthScale, "width scale must be in (0, 1], got %v", ws)
	}
	return nil
}
