package merge

import (
	"fmt"
	"os"
)

// MergeFiles opens the two input logs for reading, creates (or
// truncates) the output path, and runs Merge. Errors name the path that
// could not be opened or written so the caller's diagnostic identifies
// the failing file.
func MergeFiles(pathA, pathB, outPath string) error {
	fa, err := os.Open(pathA)
	if err != nil {
		return fmt.Errorf("opening log A %s: %w", pathA, err)
	}
	defer fa.Close()

	fb, err := os.Open(pathB)
	if err != nil {
		return fmt.Errorf("opening log B %s: %w", pathB, err)
	}
	defer fb.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating merged log %s: %w", outPath, err)
	}

	if err := Merge(fa, fb, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing merged log %s: %w", outPath, err)
	}
	return nil
}
