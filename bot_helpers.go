package main

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMarkdown sends a Markdown-formatted message, falling back to plain
// text when Telegram rejects the markup. Returns the sent message.
func sendMarkdown(bot BotAPI, chatID int64, text string) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	sent, err := bot.Send(msg)
	if err != nil {
		slog.Warn("Markdown send failed, retrying plain", "chat", chatID, "err", err)
		msg.ParseMode = ""
		return bot.Send(msg)
	}
	return sent, nil
}

// safeSend is sendMarkdown for callers with no use for the result.
func safeSend(bot BotAPI, chatID int64, text string) {
	if _, err := sendMarkdown(bot, chatID, text); err != nil {
		slog.Error("Failed to send message", "chat", chatID, "err", err)
	}
}

// sendWithKeyboard sends a Markdown message carrying an inline keyboard.
func sendWithKeyboard(bot BotAPI, chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = kb
	if _, err := bot.Send(msg); err != nil {
		slog.Warn("Keyboard send failed, retrying plain", "chat", chatID, "err", err)
		msg.ParseMode = ""
		if _, err := bot.Send(msg); err != nil {
			slog.Error("Failed to send message", "chat", chatID, "err", err)
		}
	}
}

// editMessage rewrites an existing message in place, optionally swapping
// its inline keyboard.
func editMessage(bot BotAPI, chatID int64, msgID int, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = "Markdown"
	if kb != nil {
		edit.ReplyMarkup = kb
	}
	if _, err := bot.Send(edit); err != nil {
		slog.Warn("Markdown edit failed, retrying plain", "chat", chatID, "msg", msgID, "err", err)
		edit.ParseMode = ""
		if _, err := bot.Send(edit); err != nil {
			slog.Error("Failed to edit message", "chat", chatID, "msg", msgID, "err", err)
		}
	}
}

// ackCallback answers a callback query so the client stops its spinner.
// Fire and forget; a failed ack only cosmetically delays the client.
func ackCallback(bot BotAPI, callbackID string) {
	if _, err := bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		slog.Warn("Callback ack failed", "err", err)
	}
}
