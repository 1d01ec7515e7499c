package show

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// FilePresenter saves charts under Dir.
type FilePresenter struct {
	Dir string
}

func (f FilePresenter) Path(img Image) string {
	return filepath.Join(f.Dir, img.Name+"."+img.Format)
}

func (f FilePresenter) Present(ctx context.Context, img Image) error {
	_, err := f.Write(img)
	return err
}

// Write stores the image and returns its path.
func (f FilePresenter) Write(img Image) (string, error) {
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return "", fmt.Errorf("error creating chart directory: %w", err)
	}
	path := f.Path(img)
	if err := os.WriteFile(path, img.Data, 0644); err != nil {
		return "", fmt.Errorf("error saving chart: %w", err)
	}
	log.Info("chart saved", "path", path, "bytes", len(img.Data))
	return path, nil
}
