package bot

import (
	"context"
	"errors"

	"github.com/ridness/clubbot/core/logger"
	"github.com/ridness/clubbot/core/telegram/callbacks"
	tghelpers "github.com/ridness/clubbot/core/telegram/helpers"
	"github.com/ridness/clubbot/internal/catalog"
	"github.com/ridness/clubbot/internal/conversation"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// handleOrderCallback starts a preorder conversation from a catalog item
// selection. Stale or foreign tokens get an alert to this chat only.
func (a *App) handleOrderCallback(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id := chatID(c)

	ok, err := a.isMember(ctx, c)
	if err != nil {
		return err
	}
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: textMembersOnlyAlert, ShowAlert: true})
	}

	token := callbacks.CallbackPayload(c)
	ref, err := a.selections.Resolve(id, token)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidSelection) {
			logger.Debug(ctx, "service.catalog", "selection.stale",
				slog.Int64("chat_id", id),
				slog.String("token", logger.SanitizeLimit(token, 128)),
			)
			return c.Respond(&tele.CallbackResponse{Text: textStaleSelection, ShowAlert: true})
		}
		return err
	}

	items, err := a.source.Items(ctx, ref.Category)
	if err != nil {
		return err
	}
	if ref.Index < 0 || ref.Index >= len(items) {
		return c.Respond(&tele.CallbackResponse{Text: textStaleSelection, ShowAlert: true})
	}
	item := items[ref.Index]

	member, err := a.store.Find(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return c.Respond(&tele.CallbackResponse{Text: textMembersOnlyAlert, ShowAlert: true})
	}

	seed := map[string]string{
		conversation.FieldItem:    item.Name,
		conversation.FieldName:    member.Name,
		conversation.FieldContact: member.Contact(),
	}
	res, err := a.sessions.Start(ctx, id, conversation.KindPreOrder, seed)
	if errors.Is(err, conversation.ErrAlreadyActive) {
		return c.Respond(&tele.CallbackResponse{Text: textSessionActive, ShowAlert: true})
	}
	if err != nil {
		return err
	}
	// The conversation owns the chat now; retire its selection tokens so
	// repeat clicks on the listing alert instead of racing the session.
	a.selections.Drop(id)

	if err := c.Respond(&tele.CallbackResponse{}); err != nil {
		return err
	}
	if err := a.sendStep(ctx, c, res); err != nil {
		a.sessions.End(ctx, id)
		return err
	}
	return nil
}

// finishPreOrder commits a completed preorder: bump the counter, fan the
// summary card out to the administrator and the group, thank the user.
// Fan-out failures never fail the user-facing completion.
func (a *App) finishPreOrder(ctx context.Context, c tele.Context, res conversation.StepResult) error {
	total := a.counter.Increment()
	card := buildOrderCard(res.Fields)

	a.notifier.Deliver(ctx, []int64{a.cfg.Core.Telegram.AdminID, a.cfg.Club.GroupID}, card)

	logger.Info(ctx, "service.orders", "preorder.completed",
		slog.Int64("chat_id", chatID(c)),
		slog.String("item", logger.SanitizeLimit(res.Fields[conversation.FieldItem], 128)),
		slog.Int64("orders", total),
	)
	return a.sendStep(ctx, c, res)
}
