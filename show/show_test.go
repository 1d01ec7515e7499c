package show

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pivolan/barplot/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		title string
		slug  string
	}{
		{"Dense vs Sparse", "dense_vs_sparse"},
		{"Время отклика, мс", "vremia_otklika_ms"},
		{"  ", "chart"},
		{"", "chart"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			name := FileName(tt.title)
			assert.Regexp(t, regexp.MustCompile("^"+tt.slug+"_[0-9a-f]{8}$"), name)
		})
	}
	assert.NotEqual(t, FileName("same"), FileName("same"))
}

func TestFilePresenter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	p := FilePresenter{Dir: dir}
	img := Image{Name: "counts", Format: "svg", Data: []byte("<svg/>")}

	require.NoError(t, p.Present(context.Background(), img))

	data, err := os.ReadFile(filepath.Join(dir, "counts.svg"))
	require.NoError(t, err)
	assert.Equal(t, img.Data, data)
}

func TestViewerPresenter(t *testing.T) {
	dir := t.TempDir()
	var opened string
	v := ViewerPresenter{
		Files: FilePresenter{Dir: dir},
		Open: func(path string) error {
			opened = path
			return nil
		},
	}
	img := Image{Name: "groups", Format: "png", Data: []byte("\x89PNG")}

	require.NoError(t, v.Present(context.Background(), img))
	assert.Equal(t, filepath.Join(dir, "groups.png"), opened)
	assert.FileExists(t, opened)

	v.Open = func(string) error { return errors.New("no display") }
	assert.ErrorContains(t, v.Present(context.Background(), img), "no display")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, v.Present(ctx, img), context.Canceled)
}

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramPresenter(t *testing.T) {
	sender := &fakeSender{}
	p := &TelegramPresenter{api: sender, chatID: 42}

	require.NoError(t, p.Present(context.Background(), Image{Name: "a", Title: "Small", Format: "png", Data: make([]byte, 10)}))
	require.NoError(t, p.Present(context.Background(), Image{Name: "b", Title: "Big", Format: "png", Data: make([]byte, maxSizePhoto+1)}))
	require.NoError(t, p.Present(context.Background(), Image{Name: "c", Title: "Page", Format: "html", Data: []byte("<html>")}))
	require.Len(t, sender.sent, 3)

	photo, ok := sender.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Equal(t, "Small", photo.Caption)
	assert.Equal(t, int64(42), photo.ChatID)

	doc, ok := sender.sent[1].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, "Big", doc.Caption)

	_, ok = sender.sent[2].(tgbotapi.DocumentConfig)
	assert.True(t, ok)

	sender.err = errors.New("forbidden")
	assert.ErrorContains(t, p.Present(context.Background(), Image{Name: "d", Format: "png"}), "forbidden")
}

func TestDataTable(t *testing.T) {
	out := DataTable(models.Layout{
		Title:      "Dense vs Sparse",
		Categories: []string{"A", "B"},
		Series: []models.Series{
			{Name: "Dense", Values: []float64{1, 2}},
			{Name: "Sparse", Values: []float64{3.5, 4}},
		},
	})
	assert.Contains(t, out, "Dense vs Sparse")
	assert.Contains(t, out, "LABEL")
	assert.Contains(t, out, "DENSE")
	assert.Contains(t, out, "SPARSE")
	assert.Contains(t, out, "3.5")
}
