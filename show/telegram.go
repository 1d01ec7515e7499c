package show

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pivolan/barplot/plot"
)

// larger photos get recompressed by Telegram, send them as documents
const maxSizePhoto = 150000

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramPresenter sends charts to a chat.
type TelegramPresenter struct {
	api    telegramSender
	chatID int64
}

func NewTelegramPresenter(token string, chatID int64) (*TelegramPresenter, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("tg error: %w", err)
	}
	log.Info("telegram authorized", "account", api.Self.UserName)
	return &TelegramPresenter{api: api, chatID: chatID}, nil
}

func (t *TelegramPresenter) Present(ctx context.Context, img Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file := tgbotapi.FileBytes{
		Name:  img.Name + "." + img.Format,
		Bytes: img.Data,
	}

	var msg tgbotapi.Chattable
	if isPhoto(img) {
		photo := tgbotapi.NewPhotoUpload(t.chatID, file)
		photo.Caption = img.Title
		msg = photo
	} else {
		doc := tgbotapi.NewDocumentUpload(t.chatID, file)
		doc.Caption = img.Title
		msg = doc
	}

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("error sending chart %s to chat %d: %w", file.Name, t.chatID, err)
	}
	log.Info("chart sent", "chat", t.chatID, "file", file.Name)
	return nil
}

func isPhoto(img Image) bool {
	return img.Format == plot.FormatPNG && len(img.Data) < maxSizePhoto
}
