package main

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeBot records outbound traffic instead of talking to Telegram. The
// member status it reports is configurable per test.
type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable

	nextMsgID    int
	memberStatus string // status returned for membership checks
	requestErr   error  // forced error for Request calls
}

func newFakeBot() *fakeBot {
	return &fakeBot{memberStatus: "member"}
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	f.nextMsgID++
	return tgbotapi.Message{MessageID: f.nextMsgID}, nil
}

func (f *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)

	if f.requestErr != nil {
		return nil, f.requestErr
	}
	if _, ok := c.(tgbotapi.GetChatMemberConfig); ok {
		raw, _ := json.Marshal(tgbotapi.ChatMember{Status: f.memberStatus})
		return &tgbotapi.APIResponse{Ok: true, Result: raw}, nil
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// sentTexts returns the text of every message and edit sent so far.
func (f *fakeBot) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.sent {
		switch v := c.(type) {
		case tgbotapi.MessageConfig:
			out = append(out, v.Text)
		case tgbotapi.EditMessageTextConfig:
			out = append(out, v.Text)
		}
	}
	return out
}

func (f *fakeBot) lastText(t *testing.T) string {
	t.Helper()
	texts := f.sentTexts()
	if len(texts) == 0 {
		t.Fatal("expected at least one sent message")
	}
	return texts[len(texts)-1]
}

// fakeDownloader hands back a fixed path without touching the network.
type fakeDownloader struct {
	path string
	err  error
}

func (f *fakeDownloader) Download(ctx context.Context, fileID string) (string, error) {
	return f.path, f.err
}

// newTestAppContext wires a full application around a fake bot. The gate
// runs in channel mode so membership behavior is exercised for real.
func newTestAppContext(t *testing.T, bot BotAPI, requireChannel bool) *AppContext {
	t.Helper()
	cfg := &Config{
		BotToken: "test-token",
		Channel: ChannelConfig{
			Require:  requireChannel,
			Username: "@osint_hub",
			ID:       -100123,
		},
		Greeting: GreetingConfig{Text: "Hi", RevealDelayMs: 1},
		Media:    MediaConfig{DownloadDir: t.TempDir()},
	}
	applyConfigDefaults(cfg)
	cfg.Greeting.Text = "Hi"
	cfg.Greeting.RevealDelayMs = 1

	app := InitApp(cfg, bot, &fakeDownloader{})
	if err := app.Menus.Validate(app.Registry); err != nil {
		t.Fatalf("menu tree invalid: %v", err)
	}
	return app
}

// messageUpdate builds a plain text or command update from a user.
func messageUpdate(userID, chatID int64, text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}
	if len(text) > 0 && text[0] == '/' {
		end := len(text)
		for i, r := range text {
			if r == ' ' {
				end = i
				break
			}
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: end}}
	}
	return tgbotapi.Update{Message: msg}
}

// callbackUpdate builds an inline button press.
func callbackUpdate(userID, chatID int64, msgID int, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cbq",
		From: &tgbotapi.User{ID: userID},
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: msgID,
			Chat:      &tgbotapi.Chat{ID: chatID},
		},
	}}
}
