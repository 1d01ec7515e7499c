package show

import (
	"context"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	uuid "github.com/satori/go.uuid"
)

// Image is a rendered chart ready to be shown.
type Image struct {
	Name   string
	Title  string
	Format string
	Data   []byte
}

type Presenter interface {
	Present(ctx context.Context, img Image) error
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// FileName builds a file system friendly, unique name from a chart title.
func FileName(title string) string {
	slug := strings.ToLower(unidecode.Unidecode(title))
	slug = strings.Trim(nonSlug.ReplaceAllString(slug, "_"), "_")
	if slug == "" {
		slug = "chart"
	}
	return slug + "_" + uuid.NewV4().String()[:8]
}
