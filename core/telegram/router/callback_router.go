package router

import (
	"time"

	tg "github.com/ridness/clubbot/core/telegram"
	"github.com/ridness/clubbot/core/telegram/middleware"
	"github.com/ridness/clubbot/core/telegram/ui"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CallbackRoutes builds the generic OnCallback dispatcher: the callback key
// is resolved against the registry; unknown keys go to the application fallback.
func CallbackRoutes(reg *tg.Registry, fb ui.FallbackProvider) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		key, _ := parseCallback(c.Callback())

		if key == "" {
			logHandlerSummary(c, "callback.empty", start, "skip", "ok", nil)
			return c.Respond(&tele.CallbackResponse{})
		}

		name := "cb." + normalizeHandlerName(key)
		if h, ok := reg.GetCallback(key); ok {
			return handleWithSummary(c, name, start, "", "", func() error {
				return h(c)
			}, slog.String("cb_key", key))
		}

		if fb != nil {
			if h := fb.UnknownCallback(); h != nil {
				return handleWithSummary(c, "cb.not_found", start, "skip", "unknown", func() error {
					return h(c)
				}, slog.String("cb_key", key))
			}
		}

		logHandlerSummary(c, "cb.not_found", start, "skip", "unknown", nil, slog.String("cb_key", key))
		return c.Respond(&tele.CallbackResponse{})
	}

	return []tg.Route{
		{
			Endpoint: tele.OnCallback,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}
