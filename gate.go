package main

import (
	"context"
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MembershipProvider answers whether a user belongs to the required
// channel. A returned error means the check itself failed, which is
// distinct from a definitive "not a member".
type MembershipProvider interface {
	IsMember(ctx context.Context, userID int64) (bool, error)
}

// allowAllMembership is the local/testing provider: everyone passes.
type allowAllMembership struct{}

func (allowAllMembership) IsMember(ctx context.Context, userID int64) (bool, error) {
	return true, nil
}

// channelMembership asks Telegram whether the user is in the configured
// channel.
type channelMembership struct {
	bot       BotAPI
	channelID int64
}

func (m *channelMembership) IsMember(ctx context.Context, userID int64) (bool, error) {
	resp, err := m.bot.Request(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: m.channelID,
			UserID: userID,
		},
	})
	if err != nil {
		return false, fmt.Errorf("membership check failed: %w", err)
	}
	if !resp.Ok {
		return false, fmt.Errorf("membership check rejected: %s", resp.Description)
	}

	var member tgbotapi.ChatMember
	if err := json.Unmarshal(resp.Result, &member); err != nil {
		return false, fmt.Errorf("membership response unreadable: %w", err)
	}

	switch member.Status {
	case "creator", "administrator", "member":
		return true, nil
	default:
		return false, nil
	}
}

// Gate is the membership checkpoint in front of the feature surface.
type Gate struct {
	members MembershipProvider
}

func newGate(cfg *Config, bot BotAPI) *Gate {
	if !cfg.Channel.Require {
		return &Gate{members: allowAllMembership{}}
	}
	return &Gate{members: &channelMembership{bot: bot, channelID: cfg.Channel.ID}}
}

// Check reports whether the user may proceed. An error means the check
// itself failed; callers treat that as blocked (fail closed) and tell the
// user it is transient.
func (g *Gate) Check(ctx context.Context, userID int64) (bool, error) {
	return g.members.IsMember(ctx, userID)
}
