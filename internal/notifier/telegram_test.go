package notifier

import (
	"context"
	"github.com/avinsharma/job-scout/internal/domain/models"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

type mockApiSender struct {
	sent []botApi.Chattable
	err  error
}

func (m *mockApiSender) Send(c botApi.Chattable) (botApi.Message, error) {
	m.sent = append(m.sent, c)
	return botApi.Message{}, m.err
}

func Test_Telegram_SendsHtmlMessageToConfiguredChat(t *testing.T) {

	api := &mockApiSender{}
	telegram := NewTelegram(api, 42, 10)

	posting := models.AnnotatedPosting{
		Posting: models.Posting{Title: "DevOps Engineer", Link: "https://x/1"},
	}

	assert.NoError(t, telegram.Notify(context.Background(), posting))
	assert.Len(t, api.sent, 1)

	msg, ok := api.sent[0].(botApi.MessageConfig)
	assert.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "HTML", msg.ParseMode)
	assert.Contains(t, msg.Text, "DevOps Engineer")
}

func Test_Telegram_SendFailureIsReturned(t *testing.T) {

	api := &mockApiSender{err: errors.New("flood control")}
	telegram := NewTelegram(api, 42, 10)

	err := telegram.Notify(context.Background(), models.AnnotatedPosting{})
	assert.ErrorContains(t, err, "flood control")
}

func Test_Telegram_NotifyToOverridesChat(t *testing.T) {

	api := &mockApiSender{}
	telegram := NewTelegram(api, 42, 10)

	assert.NoError(t, telegram.NotifyTo(context.Background(), 77, models.AnnotatedPosting{}))

	msg := api.sent[0].(botApi.MessageConfig)
	assert.Equal(t, int64(77), msg.ChatID)
}
