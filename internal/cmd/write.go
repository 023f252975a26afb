package cmd

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// Writes data to path in one go. The content is synced to a temporary file
// and renamed over path, so path never holds a partial artifact.
func writeFile(path string, data []byte, mode os.FileMode) error {
	if err := renameio.WriteFile(path, data, mode, renameio.IgnoreUmask()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
