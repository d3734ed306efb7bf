package router

import (
	"time"

	tg "github.com/ridness/clubbot/core/telegram"
	"github.com/ridness/clubbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// CommandRoutes binds every registered slash command as its own telebot
// endpoint so that commands work even when a text fallback is installed.
// Admin-only commands are wrapped with the admin gate.
func CommandRoutes(reg *tg.Registry, admin middleware.AdminOptions) []tg.Route {
	var routes []tg.Route
	for name, cmd := range reg.Commands() {
		if cmd.Handler == nil {
			continue
		}
		handlerName := normalizeHandlerName(name)
		h := cmd.Handler
		if cmd.AdminOnly {
			h = middleware.AdminOnlyMiddleware(admin)(h)
		}
		wrapped := func(handlerName string, h tele.HandlerFunc) tele.HandlerFunc {
			return func(c tele.Context) error {
				start := time.Now()
				return handleWithSummary(c, handlerName, start, "", "", func() error {
					return h(c)
				})
			}
		}(handlerName, h)

		routes = append(routes, tg.Route{
			Endpoint: name,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(wrapped)),
		})

		for _, alias := range cmd.Aliases {
			if alias == "" {
				continue
			}
			ep := alias
			if ep[0] != '/' {
				ep = "/" + ep
			}
			routes = append(routes, tg.Route{
				Endpoint: ep,
				Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(wrapped)),
			})
		}
	}
	return routes
}
