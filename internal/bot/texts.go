package bot

import (
	"fmt"
	"strings"

	"github.com/ridness/clubbot/core/telegram/format"
	"github.com/ridness/clubbot/internal/conversation"
)

// Menu labels. Text routing matches these case-insensitively.
const (
	labelNews      = "Новости"
	labelCatalog   = "Каталог"
	labelPreorder  = "Предзаказ"
	labelClub      = "🐎 RIDNESS Club"
	labelContacts  = "Контакты"
	labelAddresses = "Адреса"
	labelMainMenu  = "В главное меню"
)

const (
	textWelcomeMember = "Добро пожаловать в <b>RIDNESS</b> — экипировка для самых требовательных всадников.\nВыберите раздел 👇"
	textWelcomeGuest  = "RIDNESS Club — экипировка для самых требовательных всадников.\nДля доступа к каталогу и предзаказу вступите в клуб."

	textMembersOnly      = "Доступно только участникам RIDNESS Club."
	textMembersOnlyAlert = "Только для участников клуба"

	textNews = "🔥 <b>Новости RIDNESS</b>\n" +
		"• Новая коллекция уже доступна!\n" +
		"• До 15 июня скидка 10 % на бриджи.\n" +
		"• Следите за обновлениями!"

	textCatalogEmpty   = "Каталог пока пуст 🚧"
	textCategoryEmpty  = "В этой категории пока пусто."
	textChooseCategory = "Выберите категорию:"
	textAfterListing   = "Выберите другую категорию или «В главное меню»."

	textContacts = "📞 <b>Контакты</b>\n" +
		"Телефон: +7 495 544‑71‑66\n" +
		"WhatsApp: +7 495 544‑71‑66\n" +
		"Instagram: @ridness.equestrian\n" +
		"Email: ceo@ridness.ru"
	textPhoneAlert = "Телефон: +7 495 544‑71‑66"
	textAddresses  = "🏬 Наши адреса:"

	textStaleSelection = "Ошибка товара"
	textSessionActive  = "Сначала завершите текущий диалог или отправьте «Отмена»."
	textSaveFailed     = "Не получилось сохранить анкету, попробуйте позже."
	textUnknown        = "Выберите действие из меню 👇"
	textSessionExpired = "Диалог отменён: истекло время ожидания."

	textUnknownCallback = "Неизвестное действие"

	textNoAccess     = "Нет доступа."
	textAddSaleUsage = "Используйте: /add_sale N"
	textPong         = "pong"
)

func textAlreadyMember(promo string) string {
	return fmt.Sprintf("Вы уже участник клуба 🎉\nПромокод: %s", promo)
}

func textEnrolled(promo string) string {
	return fmt.Sprintf("Поздравляем, вы вступили в RIDNESS Club!\n"+
		"Ваш промокод: <b>%s</b>\n"+
		"Покажите его в магазине или введите на сайте.", promo)
}

func textStats(members, preorders int64) string {
	return fmt.Sprintf("Участников клуба: %d\nПредзаказов: %d", members, preorders)
}

func textSaleAdded(delta, total int64) string {
	return fmt.Sprintf("Добавлено %d. Всего предзаказов: %d", delta, total)
}

// buildItemCaption renders one catalog item card in HTML.
func buildItemCaption(name, price, description string) string {
	return format.Lines(
		"🆕 "+format.Bold(format.EscapeHTML(name)),
		"💰 Цена: "+format.EscapeHTML(price),
		format.EscapeHTML(description),
	)
}

// buildOrderCard renders the completed preorder summary sent to the admin
// and the group. A skipped comment renders as "(нет)".
func buildOrderCard(fields map[string]string) string {
	comment := fields[conversation.FieldComment]
	if comment == "" {
		comment = "(нет)"
	}
	return format.Lines(
		"🛒 "+format.Bold("Предзаказ"),
		"Товар: "+format.EscapeHTML(fields[conversation.FieldItem]),
		"Имя: "+format.EscapeHTML(fields[conversation.FieldName]),
		"Контакт: "+format.EscapeHTML(fields[conversation.FieldContact]),
		"Кол-во: "+format.EscapeHTML(fields[conversation.FieldQty]),
		"Комментарий: "+format.EscapeHTML(comment),
		"Источник: telegram_bot",
	)
}

// buildMemberCard renders the new-enrollment notification for the admin.
func buildMemberCard(fields map[string]string) string {
	return format.Lines(
		"🎉 Новый участник Ridness Club:",
		format.EscapeHTML(fields[conversation.FieldName]),
		format.EscapeHTML(fields[conversation.FieldPhone]),
		format.EscapeHTML(fields[conversation.FieldEmail]),
	)
}

// isClubEntry matches the club entry label: any text mentioning the club
// name or starting with the horse emoji.
func isClubEntry(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "ridness club") || strings.HasPrefix(text, "🐎")
}
