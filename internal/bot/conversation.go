package bot

import (
	"context"
	"errors"

	tghelpers "github.com/ridness/clubbot/core/telegram/helpers"
	"github.com/ridness/clubbot/internal/conversation"

	tele "gopkg.in/telebot.v4"
)

// HandleText feeds one text turn into the chat's active conversation.
// Implements the text router's Conversations interface; the router only
// calls this when a session exists, but the session may expire in between.
func (a *App) HandleText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id := chatID(c)

	kind, _ := a.sessions.Get(id)
	res, err := a.sessions.Advance(ctx, id, conversation.Event{Text: c.Text()})
	if errors.Is(err, conversation.ErrNoSession) {
		return a.handleFreeText(c)
	}
	if err != nil {
		a.sessions.End(ctx, id)
		return err
	}

	switch res.Status {
	case conversation.StatusContinue:
		if err := a.sendStep(ctx, c, res); err != nil {
			// A failed prompt would leave the user stuck mid-form.
			a.sessions.End(ctx, id)
			return err
		}
		return nil
	case conversation.StatusCompleted:
		switch kind {
		case conversation.KindPreOrder:
			return a.finishPreOrder(ctx, c, res)
		case conversation.KindClubJoin:
			return a.finishClubJoin(ctx, c, res)
		}
		return nil
	case conversation.StatusCancelled, conversation.StatusDeclined:
		return a.sendStep(ctx, c, res)
	default:
		return nil
	}
}

func (a *App) sendStep(ctx context.Context, c tele.Context, res conversation.StepResult) error {
	markup := conversationKeyboard(res.Keyboard, false)
	if res.Keyboard == conversation.KeyboardMain {
		ok, err := a.isMember(ctx, c)
		if err != nil {
			return err
		}
		markup = menuFor(ok)
	}
	if res.Prompt == "" {
		return nil
	}
	return tghelpers.SendHTML(c, res.Prompt, markup)
}
