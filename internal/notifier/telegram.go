package notifier

import (
	"context"
	"github.com/avinsharma/job-scout/internal/domain/models"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type apiSender interface {
	Send(c botApi.Chattable) (botApi.Message, error)
}

// Telegram delivers formatted postings to a single chat, rate limited so a
// large batch does not trip the Telegram API flood control.
type Telegram struct {
	api     apiSender
	chatID  int64
	limiter *rate.Limiter
}

func NewTelegram(api apiSender, chatID int64, maxMessagesPerSecond float32) *Telegram {
	return &Telegram{
		api:     api,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(maxMessagesPerSecond), 1),
	}
}

func (t *Telegram) Notify(ctx context.Context, posting models.AnnotatedPosting) error {
	return t.NotifyTo(ctx, t.chatID, posting)
}

func (t *Telegram) NotifyTo(ctx context.Context, chatID int64, posting models.AnnotatedPosting) error {

	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := botApi.NewMessage(chatID, FormatPosting(posting))
	msg.ParseMode = "HTML"

	if _, err := t.api.Send(msg); err != nil {
		return errors.Wrapf(err, "sending posting %v to chat %v", posting.Key(), chatID)
	}

	return nil
}
