package show

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
)

// ViewerPresenter saves the chart and opens it with the desktop's default
// application. It returns once the viewer has been launched.
type ViewerPresenter struct {
	Files FilePresenter
	Open  func(path string) error
}

func NewViewerPresenter(dir string) ViewerPresenter {
	return ViewerPresenter{
		Files: FilePresenter{Dir: dir},
		Open:  browser.OpenFile,
	}
}

func (v ViewerPresenter) Present(ctx context.Context, img Image) error {
	path, err := v.Files.Write(img)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	open := v.Open
	if open == nil {
		open = browser.OpenFile
	}
	log.Debug("opening chart", "path", path)
	if err := open(path); err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	return nil
}
