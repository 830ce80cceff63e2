package main

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// revealMessage plays the greeting as a character-by-character reveal: it
// sends the first rune and edits the message to grow one rune per tick.
// Cancelling the context jumps straight to the full text, so the final
// frame is identical whether the animation ran to completion or not.
// Returns the message id of the reveal surface.
func revealMessage(ctx context.Context, bot BotAPI, chatID int64, text string, delay time.Duration) int {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}

	sent, err := bot.Send(tgbotapi.NewMessage(chatID, string(runes[:1])))
	if err != nil {
		return 0
	}
	msgID := sent.MessageID

	finish := func() int {
		if len(runes) > 1 {
			edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
			_, _ = bot.Send(edit)
		}
		return msgID
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for i := 2; i <= len(runes); i++ {
		select {
		case <-ctx.Done():
			return finish()
		case <-ticker.C:
		}
		edit := tgbotapi.NewEditMessageText(chatID, msgID, string(runes[:i]))
		if _, err := bot.Send(edit); err != nil {
			// Flood control or a deleted message; settle on the final text.
			return finish()
		}
	}
	return msgID
}
