package bot

import (
	"context"
	"errors"

	"github.com/ridness/clubbot/core/logger"
	tghelpers "github.com/ridness/clubbot/core/telegram/helpers"
	"github.com/ridness/clubbot/internal/club"
	"github.com/ridness/clubbot/internal/conversation"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// handleClubEntry starts the enrollment questionnaire. Members short-circuit
// to the promo reply without creating a session.
func (a *App) handleClubEntry(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id := chatID(c)

	ok, err := a.isMember(ctx, c)
	if err != nil {
		return err
	}
	if ok {
		return tghelpers.SendHTML(c, textAlreadyMember(a.cfg.Club.PromoCode), mainMenu())
	}

	res, err := a.sessions.Start(ctx, id, conversation.KindClubJoin, nil)
	if errors.Is(err, conversation.ErrAlreadyActive) {
		return tghelpers.SendHTML(c, textSessionActive, cancelMenu())
	}
	if err != nil {
		return err
	}

	if err := a.sendStep(ctx, c, res); err != nil {
		a.sessions.End(ctx, id)
		return err
	}
	return nil
}

// finishClubJoin commits the enrollment. A duplicate at commit time is
// silently deduplicated: the first record wins and the user still gets the
// promo reply. The admin notification is a single recipient, not fan-out.
func (a *App) finishClubJoin(ctx context.Context, c tele.Context, res conversation.StepResult) error {
	id := chatID(c)
	member := club.Member{
		ChatID: id,
		Name:   res.Fields[conversation.FieldName],
		Phone:  res.Fields[conversation.FieldPhone],
		Email:  res.Fields[conversation.FieldEmail],
	}

	err := a.store.Append(ctx, member)
	switch {
	case errors.Is(err, club.ErrDuplicate):
		logger.Debug(ctx, "service.club", "enroll.duplicate",
			slog.Int64("chat_id", id),
		)
	case err != nil:
		if sendErr := tghelpers.SendHTML(c, textSaveFailed, guestMenu()); sendErr != nil {
			return sendErr
		}
		return err
	default:
		a.notifier.Deliver(ctx, []int64{a.cfg.Core.Telegram.AdminID}, buildMemberCard(res.Fields))
	}

	return tghelpers.SendHTML(c, textEnrolled(a.cfg.Club.PromoCode), mainMenu())
}
