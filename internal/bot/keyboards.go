package bot

import (
	"github.com/ridness/clubbot/core/telegram/keyboard"
	"github.com/ridness/clubbot/internal/conversation"

	tele "gopkg.in/telebot.v4"
)

func mainMenu() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{labelNews, labelCatalog},
		[]string{labelPreorder, labelClub},
		[]string{labelContacts, labelAddresses},
	)
}

func guestMenu() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{labelClub})
}

func categoriesMenu(categories []string) *tele.ReplyMarkup {
	return keyboard.ReplyColumn(append(append([]string(nil), categories...), labelMainMenu)...)
}

func cancelMenu() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{conversation.CancelToken})
}

func skipCancelMenu() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{conversation.SkipToken, conversation.CancelToken})
}

func agreeCancelMenu() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{conversation.AgreeToken, conversation.CancelToken})
}

func contactsMenu() *tele.ReplyMarkup {
	return keyboard.InlineButtonsNPerRow([]keyboard.InlineBtn{
		{Text: "📞 Телефон", Unique: cbCopyPhone},
		{Text: "WhatsApp", URL: "https://wa.me/74955447166"},
		{Text: "Instagram", URL: "https://www.instagram.com/ridness.equestrian/"},
		{Text: "Email", URL: "mailto:ceo@ridness.ru"},
	}, 2)
}

func addressesMenu() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "КСК Прованс", URL: "https://yandex.com/maps/-/CHGVqL90"},
		{Text: "Магазин «Баланс»", URL: "https://yandex.com/maps/-/CHGVuMzD"},
		{Text: "Emerald Stables", URL: "https://yandex.com/maps/-/CHGVuVKs"},
	})
}

// menuFor picks the stateless menu keyboard by membership.
func menuFor(isMember bool) *tele.ReplyMarkup {
	if isMember {
		return mainMenu()
	}
	return guestMenu()
}

// conversationKeyboard maps engine keyboard hints to concrete markups.
// KeyboardMain resolves by membership since cancel can happen both ways.
func conversationKeyboard(hint conversation.Keyboard, isMember bool) *tele.ReplyMarkup {
	switch hint {
	case conversation.KeyboardMain:
		return menuFor(isMember)
	case conversation.KeyboardCancel:
		return cancelMenu()
	case conversation.KeyboardSkipCancel:
		return skipCancelMenu()
	case conversation.KeyboardAgreeCancel:
		return agreeCancelMenu()
	default:
		return nil
	}
}
