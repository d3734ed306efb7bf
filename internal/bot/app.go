package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ridness/clubbot/core/bootstrap"
	coretelegram "github.com/ridness/clubbot/core/telegram"
	"github.com/ridness/clubbot/core/telegram/commands"
	"github.com/ridness/clubbot/core/telegram/middleware"
	"github.com/ridness/clubbot/core/telegram/router"
	"github.com/ridness/clubbot/core/telegram/ui"
	"github.com/ridness/clubbot/internal/catalog"
	"github.com/ridness/clubbot/internal/club"
	appconfig "github.com/ridness/clubbot/internal/config"
	"github.com/ridness/clubbot/internal/conversation"
	"github.com/ridness/clubbot/internal/notify"
	"github.com/ridness/clubbot/internal/orders"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques.
const (
	cbOrder     = "order"
	cbCopyPhone = "copy_phone"
)

// App wires the domain services into the Telegram runtime.
type App struct {
	cfg *appconfig.AppConfig
	db  *sqlx.DB

	store      club.Store
	source     catalog.Source
	selections *catalog.Selections
	sessions   *conversation.Registry
	counter    *orders.Counter

	// Set in OnStart, before the update loop begins.
	notifier *notify.Notifier
}

// The app serves unmatched text and callbacks itself.
var _ ui.FallbackProvider = (*App)(nil)

// New bootstraps infrastructure (logger, database, migrations, catalog seed)
// and builds the application services.
func New(cfg *appconfig.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bot: nil config")
	}

	result, err := bootstrap.Run(bootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
		Seeders: []bootstrap.Seeder{
			catalog.Seeder{Path: cfg.Club.CatalogFile},
		},
	})
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.Club.SessionTTLMinutes) * time.Minute
	return &App{
		cfg:        cfg,
		db:         result.DB,
		store:      club.NewPostgresStore(result.DB),
		source:     catalog.NewPostgresSource(result.DB),
		selections: catalog.NewSelections(),
		sessions:   conversation.NewRegistry(ttl, conversation.PreOrder{}, conversation.ClubJoin{}),
		counter:    orders.NewCounter(),
	}, nil
}

// InProgress reports whether the chat has an active conversation.
// Implements the text router's Conversations interface.
func (a *App) InProgress(chatID int64) bool {
	return a.sessions.InProgress(chatID)
}

// TelegramRunOptions assembles the registry, routes, and lifecycle hooks.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Запустить бота",
	})
	reg.RegisterCommand("/ping", commands.Command{
		Handler:     a.handlePing,
		Description: "Проверка связи",
		Hidden:      true,
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     a.handleStats,
		Description: "Статистика клуба",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/add_sale", commands.Command{
		Handler:     a.handleAddSale,
		Description: "Скорректировать счётчик предзаказов",
		AdminOnly:   true,
	})

	reg.RegisterLabel(labelNews, a.handleNews)
	reg.RegisterLabel(labelCatalog, a.handleCatalog)
	reg.RegisterLabel(labelPreorder, a.handleCatalog)
	reg.RegisterLabel(labelContacts, a.handleContacts)
	reg.RegisterLabel(labelAddresses, a.handleAddresses)
	reg.RegisterLabel(labelMainMenu, a.handleUnknown)
	reg.RegisterLabelMatch("club_entry", isClubEntry, a.handleClubEntry)

	if err := reg.RegisterCallback(cbOrder, a.handleOrderCallback); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(cbCopyPhone, a.handleCopyPhone); err != nil {
		return coretelegram.RunOptions{}, err
	}
	adminOpts := middleware.AdminOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
		OnReject: func(c tele.Context) error {
			return c.Send(textNoAccess)
		},
	}

	var routes []coretelegram.Route
	routes = append(routes, router.CommandRoutes(reg, adminOpts)...)
	routes = append(routes, router.TextRoutes(a, reg, a)...)
	routes = append(routes, router.CallbackRoutes(reg, a)...)

	return coretelegram.RunOptions{
		Config:      &a.cfg.Core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(&a.cfg.Core, nil),
		Routes:      routes,
		OnStart:     a.onStart,
		OnStop:      a.onStop,
	}, nil
}

func (a *App) onStart(ctx context.Context, rt coretelegram.Runtime) error {
	sendTo := notify.SenderFunc(func(_ context.Context, chatID int64, text string) error {
		_, err := rt.Bot.Send(&tele.Chat{ID: chatID}, text, &tele.SendOptions{ParseMode: tele.ModeHTML})
		return err
	})
	a.notifier = notify.New(sendTo, rt.Dispatcher)

	a.sessions.OnExpire = func(chatID int64, _ conversation.Kind) {
		a.notifier.Deliver(context.Background(), []int64{chatID}, textSessionExpired)
	}
	go a.sessions.RunJanitor(ctx, time.Minute)

	return nil
}

func (a *App) onStop(_ context.Context, _ coretelegram.Runtime) error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
