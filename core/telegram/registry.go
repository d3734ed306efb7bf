package telegram

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ridness/clubbot/core/logger"
	"github.com/ridness/clubbot/core/telegram/commands"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// labelDef holds a menu-button handler with its matching predicate.
type labelDef struct {
	name    string
	match   func(string) bool
	handler tele.HandlerFunc
}

// Registry holds bot commands, menu labels, and callbacks. Unknown text and
// unknown callbacks are handled by the application's ui.FallbackProvider,
// not by the registry.
type Registry struct {
	commands    map[string]commands.Command
	labels      []labelDef
	callbacks   map[string]tele.HandlerFunc
	callbacksMu sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands:  make(map[string]commands.Command),
		callbacks: make(map[string]tele.HandlerFunc),
	}
}

// RegisterCommand adds a new slash command.
func (r *Registry) RegisterCommand(name string, cmd commands.Command) {
	if r == nil || name == "" || cmd.Handler == nil || cmd.Description == "" {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "invalid"),
		)
		return
	}
	if name[0] != '/' {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "no_slash_prefix"),
		)
		return
	}
	if _, exists := r.commands[name]; exists {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.duplicate",
			slog.String("name", name),
		)
		return
	}
	r.commands[name] = cmd
}

// RegisterLabel binds a menu-button label to a handler.
// The label is matched case-insensitively against the full message text.
func (r *Registry) RegisterLabel(label string, h tele.HandlerFunc) {
	want := NormalizeLabel(label)
	r.RegisterLabelMatch(label, func(text string) bool {
		return NormalizeLabel(text) == want
	}, h)
}

// RegisterLabelMatch binds a handler to an arbitrary text predicate.
// Predicates are evaluated in registration order.
func (r *Registry) RegisterLabelMatch(name string, match func(string) bool, h tele.HandlerFunc) {
	if r == nil || name == "" || match == nil || h == nil {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.label.skip",
			slog.String("name", name),
			slog.String("reason", "invalid"),
		)
		return
	}
	r.labels = append(r.labels, labelDef{name: name, match: match, handler: h})
}

// LookupLabel finds the first registered label whose predicate matches text.
func (r *Registry) LookupLabel(text string) (string, tele.HandlerFunc, bool) {
	if strings.TrimSpace(text) == "" {
		return "", nil, false
	}
	for _, def := range r.labels {
		if def.match(text) {
			return def.name, def.handler, true
		}
	}
	return "", nil, false
}

// NormalizeLabel lowercases and trims a menu label for comparison.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ListCommands returns a slice of tele.Command, optionally filtering out hidden and admin-only commands.
func (r *Registry) ListCommands(visibleOnly bool) []tele.Command {
	var list []tele.Command
	for cmd, meta := range r.commands {
		if visibleOnly && (meta.Hidden || meta.AdminOnly) {
			continue
		}
		list = append(list, tele.Command{Text: cmd, Description: meta.Description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Text < list[j].Text })
	return list
}

// LookupCommand searches for a command by name or its aliases and returns the canonical key with metadata if found.
func (r *Registry) LookupCommand(name string) (string, commands.Command, bool) {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	if cmd, ok := r.commands[name]; ok {
		return name, cmd, true
	}
	for key, cmd := range r.commands {
		for _, alias := range cmd.Aliases {
			if alias == name || "/"+alias == name {
				return key, cmd, true
			}
		}
	}
	return "", commands.Command{}, false
}

// Commands returns all registered commands.
func (r *Registry) Commands() map[string]commands.Command {
	return r.commands
}

// RegisterCallback adds a callback handler mapped to its key.
func (r *Registry) RegisterCallback(key string, handler tele.HandlerFunc) error {
	if r == nil || key == "" || handler == nil {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.callback.skip",
			slog.String("key", key),
			slog.Bool("handler_nil", handler == nil),
		)
		return errors.New("invalid callback registration")
	}
	r.callbacksMu.Lock()
	defer r.callbacksMu.Unlock()
	if _, exists := r.callbacks[key]; exists {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.callback.duplicate",
			slog.String("key", key),
		)
		return fmt.Errorf("callback already registered: %s", key)
	}
	r.callbacks[key] = handler
	return nil
}

// GetCallback safely returns handler by key.
func (r *Registry) GetCallback(key string) (tele.HandlerFunc, bool) {
	r.callbacksMu.RLock()
	defer r.callbacksMu.RUnlock()
	h, ok := r.callbacks[key]
	return h, ok
}

// ListCallbacks returns sorted keys (for diagnostics).
func (r *Registry) ListCallbacks() []string {
	r.callbacksMu.RLock()
	defer r.callbacksMu.RUnlock()
	names := make([]string, 0, len(r.callbacks))
	for k := range r.callbacks {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SetupCommands sets the Telegram bot commands shown in the command menu.
func SetupCommands(bot *tele.Bot, reg *Registry) {
	visible := reg.ListCommands(true)
	if err := bot.SetCommands(visible); err != nil {
		logger.TWire.LogAttrs(context.Background(), slog.LevelError, "register.commands.set_failed",
			slog.String("err", err.Error()),
		)
	}
}
