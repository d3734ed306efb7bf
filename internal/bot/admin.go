package bot

import (
	"strconv"
	"strings"

	tghelpers "github.com/ridness/clubbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

func (a *App) handlePing(c tele.Context) error {
	return tghelpers.SendText(c, textPong)
}

func (a *App) handleStats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	members, err := a.store.Count(ctx)
	if err != nil {
		return err
	}
	return tghelpers.SendText(c, textStats(members, a.counter.Total()))
}

// handleAddSale adjusts the preorder counter by an integer argument.
// A malformed argument replies with usage and leaves the counter unchanged.
func (a *App) handleAddSale(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	arg := ""
	if msg := c.Message(); msg != nil {
		arg = strings.TrimSpace(msg.Payload)
	}
	delta, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return tghelpers.SendText(c, textAddSaleUsage)
	}

	total := a.counter.Add(ctx, delta)
	return tghelpers.SendText(c, textSaleAdded(delta, total))
}
