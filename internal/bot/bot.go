package bot

import (
	"context"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/avinsharma/job-scout/internal/events"
	"github.com/avinsharma/job-scout/internal/logger"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"strings"
)

type postingSender interface {
	NotifyTo(ctx context.Context, chatID int64, posting models.AnnotatedPosting) error
}

// Bot is the interactive command surface: a user picks a source and receives
// on-demand results. Scan requests travel to the runner over the event bus;
// completed scans come back the same way.
type Bot struct {
	api    *botApi.BotAPI
	bus    EventBus.Bus
	sender postingSender
}

func NewBot(api *botApi.BotAPI, bus EventBus.Bus, sender postingSender) (*Bot, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if sender == nil {
		return nil, errors.New("sender is nil")
	}

	log.Infof("Authorized on account %s", api.Self.UserName)

	if err := botApi.SetLogger(log.StandardLogger()); err != nil {
		return nil, err
	}

	createdBot := &Bot{api: api, bus: bus, sender: sender}

	if err := bus.Subscribe(events.ScanCompletedTopic, createdBot.onScanCompleted); err != nil {
		return nil, err
	}

	return createdBot, nil
}

func (b *Bot) Run() {

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	for update := range updates {

		if update.Message == nil {
			continue
		}

		if update.Message.Chat.IsGroup() || update.Message.Chat.IsSuperGroup() {
			continue
		}

		go b.handleMessage(update.Message)
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleMessage(message *botApi.Message) {

	var response botApi.Chattable

	switch message.Command() {
	case "start":
		msg := botApi.NewMessage(message.Chat.ID,
			"Hi! I watch job boards for you.\n"+
				"Use /sources to list the boards and /scan <source> to get fresh results on demand.")
		msg.ReplyMarkup = defaultReplyKeyboard()
		response = msg
	case "sources":
		names := lo.Map(models.AllSources(), func(s models.Source, _ int) string { return string(s) })
		response = botApi.NewMessage(message.Chat.ID, "Available sources: "+strings.Join(names, ", "))
	case "scan":
		response = b.handleScanCommand(message)
	default:
		response = botApi.NewMessage(message.Chat.ID, "Unknown command! Try /sources or /scan <source>.")
	}

	if response == nil {
		return
	}

	if _, err := b.api.Send(response); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("error occured while sending message: %v", err)
	}
}

func (b *Bot) handleScanCommand(message *botApi.Message) botApi.Chattable {

	arg := strings.ToLower(strings.TrimSpace(message.CommandArguments()))
	if arg == "" {
		return botApi.NewMessage(message.Chat.ID, "Usage: /scan <source>, e.g. /scan linkedin")
	}

	source, err := models.ToSource(arg)
	if err != nil {
		return botApi.NewMessage(message.Chat.ID,
			fmt.Sprintf("Unknown source %q, use /sources to see what I know.", arg))
	}

	b.bus.Publish(events.ScanRequestedTopic, events.ScanRequested{
		ChatID: message.Chat.ID,
		Source: source,
	})

	return botApi.NewMessage(message.Chat.ID, fmt.Sprintf("Scanning %v, results will follow shortly...", source))
}

func (b *Bot) onScanCompleted(event events.ScanCompleted) {

	if len(event.Postings) == 0 {
		msg := botApi.NewMessage(event.ChatID,
			fmt.Sprintf("No relevant postings found on %v right now.", event.Source))
		if _, err := b.api.Send(msg); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
				Errorf("error occured while sending message: %v", err)
		}
		return
	}

	ctx := context.Background()
	for _, posting := range event.Postings {
		if err := b.sender.NotifyTo(ctx, event.ChatID, posting); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
				Errorf("failed to deliver scan result: %v", err)
		}
	}
}

func defaultReplyKeyboard() botApi.ReplyKeyboardMarkup {

	buttons := lo.Map(models.AllSources(), func(s models.Source, _ int) botApi.KeyboardButton {
		return botApi.NewKeyboardButton("/scan " + string(s))
	})

	return botApi.NewReplyKeyboard(buttons)
}
