package bot

import (
	tghelpers "github.com/ridness/clubbot/core/telegram/helpers"
	"github.com/ridness/clubbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// handleCatalog lists categories. The "Предзаказ" menu button routes here
// too: a preorder always starts from a catalog selection.
func (a *App) handleCatalog(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	ok, err := a.requireMember(ctx, c)
	if err != nil || !ok {
		return err
	}

	categories, err := a.source.Categories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return tghelpers.SendHTML(c, textCatalogEmpty, mainMenu())
	}
	return tghelpers.SendHTML(c, textChooseCategory, categoriesMenu(categories))
}

// showItems renders one category: an item card per message with a selection
// button and the site link, then the category keyboard again. Rendering
// starts a fresh selection generation for this chat only.
func (a *App) showItems(c tele.Context, category string) error {
	ctx := tghelpers.BuildContext(c)
	ok, err := a.requireMember(ctx, c)
	if err != nil || !ok {
		return err
	}

	items, err := a.source.Items(ctx, category)
	if err != nil {
		return err
	}

	categories, err := a.source.Categories(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return tghelpers.SendHTML(c, textCategoryEmpty, categoriesMenu(categories))
	}

	render := a.selections.BeginRender(chatID(c))
	for _, item := range items {
		token := render.Token(item.Category, item.Position)
		markup := keyboard.InlineButtonsRows([]keyboard.InlineBtn{
			{Text: "🛒 Предзаказать", Unique: cbOrder, Data: token},
			{Text: "🌐 Сайт", URL: a.cfg.Club.SiteURL},
		})
		caption := buildItemCaption(item.Name, item.Price, item.Description)

		if item.Photo != "" {
			photo := &tele.Photo{File: tele.FromDisk(item.Photo), Caption: caption}
			if err := tghelpers.SendPhotoHTML(c, photo, markup); err != nil {
				return err
			}
			continue
		}
		if err := tghelpers.SendHTML(c, caption, markup); err != nil {
			return err
		}
	}

	return tghelpers.SendHTML(c, textAfterListing, categoriesMenu(categories))
}
