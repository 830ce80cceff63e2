package main

import (
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Command is one user-facing operation. Execute runs on the session's
// mailbox goroutine, after the gate, with arguments already checked
// against MinArgs.
type Command interface {
	Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string)
	Description() string
	MinArgs() int
	Usage() string
}

// CommandRegistry maps command tokens (no leading slash) to commands.
// Registration happens once at startup; lookups afterwards are read-only.
type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]Command)}
}

// Register adds a command. Registering the same token twice is a
// programming error and panics at startup rather than shadowing silently.
func (r *CommandRegistry) Register(token string, cmd Command) {
	if _, exists := r.commands[token]; exists {
		panic(fmt.Sprintf("command %q registered twice", token))
	}
	r.commands[token] = cmd
}

func (r *CommandRegistry) Resolve(token string) (Command, bool) {
	cmd, ok := r.commands[token]
	return cmd, ok
}

// ResolveCallback maps a cmd_-prefixed callback id to its command token.
func (r *CommandRegistry) ResolveCallback(data string) (string, Command, bool) {
	token, ok := strings.CutPrefix(data, cmdCallbackPrefix)
	if !ok {
		return "", nil, false
	}
	cmd, found := r.commands[token]
	return token, cmd, found
}

// Tokens returns every registered token, sorted for stable help output.
func (r *CommandRegistry) Tokens() []string {
	tokens := make([]string, 0, len(r.commands))
	for t := range r.commands {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

func (r *CommandRegistry) Len() int { return len(r.commands) }

// usageReply is the uniform arity-failure message: usage line plus the
// command's one-line description.
func usageReply(cmd Command) string {
	return fmt.Sprintf("⚠️ Usage: `%s`\n%s", cmd.Usage(), cmd.Description())
}
