package router

import (
	"strings"
	"time"

	tg "github.com/ridness/clubbot/core/telegram"
	"github.com/ridness/clubbot/core/telegram/middleware"
	"github.com/ridness/clubbot/core/telegram/ui"

	tele "gopkg.in/telebot.v4"
)

// Conversations defines the minimal interface for an active-conversation engine.
// Text updates for a chat with a live conversation bypass menu dispatch entirely.
type Conversations interface {
	InProgress(chatID int64) bool
	HandleText(c tele.Context) error
}

// TextRoutes builds the text routing handler: active conversation first,
// then slash commands, then menu labels, then the application fallback.
func TextRoutes(conv Conversations, reg *tg.Registry, fb ui.FallbackProvider) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if conv != nil && c.Chat() != nil && conv.InProgress(c.Chat().ID) {
			return handleWithSummary(c, "conversation", start, "", "", func() error {
				return conv.HandleText(c)
			})
		}

		if reg != nil && strings.HasPrefix(text, "/") {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if reg != nil {
			if name, h, ok := reg.LookupLabel(text); ok {
				return handleWithSummary(c, "menu."+normalizeHandlerName(name), start, "", "", func() error {
					return h(c)
				})
			}
		}

		if fb != nil {
			if h := fb.UnknownText(); h != nil {
				return handleWithSummary(c, "unknown_text", start, "", "", func() error {
					return h(c)
				})
			}
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}
