package bot

import (
	"testing"

	"github.com/ridness/clubbot/internal/conversation"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderCard(t *testing.T) {
	card := buildOrderCard(map[string]string{
		conversation.FieldItem:    "Седло выездковое",
		conversation.FieldName:    "Anna",
		conversation.FieldContact: "+10000000000",
		conversation.FieldQty:     "2",
		conversation.FieldComment: "к выходным",
	})
	require.Contains(t, card, "<b>Предзаказ</b>")
	require.Contains(t, card, "Товар: Седло выездковое")
	require.Contains(t, card, "Кол-во: 2")
	require.Contains(t, card, "Комментарий: к выходным")
	require.Contains(t, card, "Источник: telegram_bot")
}

func TestBuildOrderCardSkippedComment(t *testing.T) {
	card := buildOrderCard(map[string]string{
		conversation.FieldItem:    "Седло",
		conversation.FieldName:    "Anna",
		conversation.FieldContact: "+1",
		conversation.FieldQty:     "1",
	})
	require.Contains(t, card, "Комментарий: (нет)")
}

func TestBuildOrderCardEscapesHTML(t *testing.T) {
	card := buildOrderCard(map[string]string{
		conversation.FieldItem: "<script>",
		conversation.FieldQty:  "1",
	})
	require.NotContains(t, card, "<script>")
	require.Contains(t, card, "&lt;script&gt;")
}

func TestBuildMemberCard(t *testing.T) {
	card := buildMemberCard(map[string]string{
		conversation.FieldName:  "Анна Иванова",
		conversation.FieldPhone: "+7 900 000-00-00",
		conversation.FieldEmail: "anna@example.com",
	})
	require.Contains(t, card, "Новый участник Ridness Club")
	require.Contains(t, card, "Анна Иванова")
	require.Contains(t, card, "anna@example.com")
}

func TestIsClubEntry(t *testing.T) {
	require.True(t, isClubEntry("🐎 RIDNESS Club"))
	require.True(t, isClubEntry("хочу в ridness club"))
	require.True(t, isClubEntry("🐎"))
	require.False(t, isClubEntry("Каталог"))
	require.False(t, isClubEntry("club"))
}

func TestBuildItemCaption(t *testing.T) {
	caption := buildItemCaption("Седло", "120 000 ₽", "Кожа, ручная работа")
	require.Contains(t, caption, "🆕 <b>Седло</b>")
	require.Contains(t, caption, "💰 Цена: 120 000 ₽")
	require.Contains(t, caption, "Кожа, ручная работа")
}
