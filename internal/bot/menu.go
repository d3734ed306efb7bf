package bot

import (
	"context"

	tghelpers "github.com/ridness/clubbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

func chatID(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}

// isMember resolves membership for the current chat.
func (a *App) isMember(ctx context.Context, c tele.Context) (bool, error) {
	return a.store.IsMember(ctx, chatID(c))
}

// requireMember gates a handler branch: non-members get the uniform
// membership-required reply and the branch stops with no side effects.
func (a *App) requireMember(ctx context.Context, c tele.Context) (bool, error) {
	ok, err := a.isMember(ctx, c)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, tghelpers.SendHTML(c, textMembersOnly, guestMenu())
	}
	return true, nil
}

func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	ok, err := a.isMember(ctx, c)
	if err != nil {
		return err
	}
	if ok {
		return tghelpers.SendHTML(c, textWelcomeMember, mainMenu())
	}
	return tghelpers.SendHTML(c, textWelcomeGuest, guestMenu())
}

func (a *App) handleNews(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	ok, err := a.requireMember(ctx, c)
	if err != nil || !ok {
		return err
	}
	return tghelpers.SendHTML(c, textNews, mainMenu())
}

func (a *App) handleContacts(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	ok, err := a.requireMember(ctx, c)
	if err != nil || !ok {
		return err
	}
	return tghelpers.SendHTML(c, textContacts, contactsMenu())
}

func (a *App) handleCopyPhone(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: textPhoneAlert, ShowAlert: true})
}

func (a *App) handleAddresses(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	ok, err := a.requireMember(ctx, c)
	if err != nil || !ok {
		return err
	}
	return tghelpers.SendHTML(c, textAddresses, addressesMenu())
}

// handleUnknown re-shows the appropriate menu for anything unrecognized.
func (a *App) handleUnknown(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	ok, err := a.isMember(ctx, c)
	if err != nil {
		return err
	}
	return tghelpers.SendHTML(c, textUnknown, menuFor(ok))
}

// UnknownText serves text that matched no conversation, command, or label.
// Implements ui.FallbackProvider.
func (a *App) UnknownText() tele.HandlerFunc {
	return a.handleFreeText
}

// UnknownCallback answers callbacks with no registered key. Stale clients
// can hold buttons from retired keyboards.
func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: textUnknownCallback})
	}
}

// handleFreeText is the unknown-text fallback: category names are menu
// labels too, everything else falls through to the unknown reply.
func (a *App) handleFreeText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	text := c.Text()

	categories, err := a.source.Categories(ctx)
	if err != nil {
		return err
	}
	for _, category := range categories {
		if category == text {
			return a.showItems(c, category)
		}
	}
	return a.handleUnknown(c)
}
