package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClubJoinHappyPath(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	res, err := r.Start(ctx, 10, KindClubJoin, nil)
	require.NoError(t, err)
	require.Equal(t, StatusContinue, res.Status)
	require.Contains(t, res.Prompt, "Ваше имя и фамилия")

	res, err = r.Advance(ctx, 10, Event{Text: "Анна Иванова"})
	require.NoError(t, err)
	require.Equal(t, "Номер телефона:", res.Prompt)

	res, err = r.Advance(ctx, 10, Event{Text: "+7 900 000-00-00"})
	require.NoError(t, err)
	require.Equal(t, "E-mail:", res.Prompt)

	res, err = r.Advance(ctx, 10, Event{Text: "anna@example.com"})
	require.NoError(t, err)
	require.Equal(t, KeyboardAgreeCancel, res.Keyboard)

	res, err = r.Advance(ctx, 10, Event{Text: AgreeToken})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, res.Status)
	require.Equal(t, map[string]string{
		FieldName:  "Анна Иванова",
		FieldPhone: "+7 900 000-00-00",
		FieldEmail: "anna@example.com",
	}, res.Fields)
	require.False(t, r.InProgress(10))
}

func TestClubJoinDeclinedIsNotCancelled(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	_, err := r.Start(ctx, 10, KindClubJoin, nil)
	require.NoError(t, err)
	for _, text := range []string{"Анна", "+7", "a@b"} {
		_, err = r.Advance(ctx, 10, Event{Text: text})
		require.NoError(t, err)
	}

	// Anything but the exact agree token at the agreement step is a refusal.
	res, err := r.Advance(ctx, 10, Event{Text: "согласен"})
	require.NoError(t, err)
	require.Equal(t, StatusDeclined, res.Status)
	require.Equal(t, "Для вступления требуется согласие.", res.Prompt)
	require.Nil(t, res.Fields)
	require.False(t, r.InProgress(10))
}

func TestClubJoinCancelMidway(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	_, err := r.Start(ctx, 10, KindClubJoin, nil)
	require.NoError(t, err)
	_, err = r.Advance(ctx, 10, Event{Text: "Анна"})
	require.NoError(t, err)

	res, err := r.Advance(ctx, 10, Event{Text: "отмена"})
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, res.Status)
	require.False(t, r.InProgress(10))

	// A fresh conversation starts from the beginning.
	res, err = r.Start(ctx, 10, KindClubJoin, nil)
	require.NoError(t, err)
	require.Equal(t, StatusContinue, res.Status)
}
