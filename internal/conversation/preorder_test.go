package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(DefaultTTL, PreOrder{}, ClubJoin{})
}

func preorderSeed() map[string]string {
	return map[string]string{
		FieldItem:    "Седло выездковое",
		FieldName:    "Anna",
		FieldContact: "+10000000000",
	}
}

func TestPreOrderHappyPath(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	res, err := r.Start(ctx, 1, KindPreOrder, preorderSeed())
	require.NoError(t, err)
	require.Equal(t, StatusContinue, res.Status)
	require.Equal(t, "Количество:", res.Prompt)

	res, err = r.Advance(ctx, 1, Event{Text: "2"})
	require.NoError(t, err)
	require.Equal(t, StatusContinue, res.Status)
	require.Equal(t, KeyboardSkipCancel, res.Keyboard)

	res, err = r.Advance(ctx, 1, Event{Text: "к выходным"})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, res.Status)
	require.Equal(t, map[string]string{
		FieldItem:    "Седло выездковое",
		FieldName:    "Anna",
		FieldContact: "+10000000000",
		FieldQty:     "2",
		FieldComment: "к выходным",
	}, res.Fields)

	// Session is gone after completion.
	require.False(t, r.InProgress(1))
	_, err = r.Advance(ctx, 1, Event{Text: "что-то"})
	require.ErrorIs(t, err, ErrNoSession)
}

func TestPreOrderSkipTokenOmitsComment(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	_, err := r.Start(ctx, 1, KindPreOrder, preorderSeed())
	require.NoError(t, err)

	_, err = r.Advance(ctx, 1, Event{Text: "2"})
	require.NoError(t, err)

	res, err := r.Advance(ctx, 1, Event{Text: SkipToken})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, res.Status)
	_, hasComment := res.Fields[FieldComment]
	require.False(t, hasComment)
}

func TestPreOrderCancelAtEveryStep(t *testing.T) {
	ctx := context.Background()

	for _, turns := range [][]string{
		{"отмена"},
		{"ОТМЕНА"},
		{"2", "Отмена"},
	} {
		r := newTestRegistry()
		_, err := r.Start(ctx, 1, KindPreOrder, preorderSeed())
		require.NoError(t, err)

		var res StepResult
		for _, text := range turns {
			res, err = r.Advance(ctx, 1, Event{Text: text})
			require.NoError(t, err)
		}
		require.Equal(t, StatusCancelled, res.Status)
		require.Equal(t, "Отменено.", res.Prompt)
		require.False(t, r.InProgress(1))
	}
}

func TestPreOrderTwoChatsDoNotCrossContaminate(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	_, err := r.Start(ctx, 1, KindPreOrder, map[string]string{FieldItem: "Седло", FieldName: "Anna", FieldContact: "+1"})
	require.NoError(t, err)
	_, err = r.Start(ctx, 2, KindPreOrder, map[string]string{FieldItem: "Бриджи", FieldName: "Boris", FieldContact: "+2"})
	require.NoError(t, err)

	// Interleave turn by turn.
	_, err = r.Advance(ctx, 1, Event{Text: "1"})
	require.NoError(t, err)
	_, err = r.Advance(ctx, 2, Event{Text: "5"})
	require.NoError(t, err)

	res1, err := r.Advance(ctx, 1, Event{Text: SkipToken})
	require.NoError(t, err)
	res2, err := r.Advance(ctx, 2, Event{Text: "срочно"})
	require.NoError(t, err)

	require.Equal(t, "Седло", res1.Fields[FieldItem])
	require.Equal(t, "1", res1.Fields[FieldQty])
	require.Equal(t, "Бриджи", res2.Fields[FieldItem])
	require.Equal(t, "5", res2.Fields[FieldQty])
	require.Equal(t, "срочно", res2.Fields[FieldComment])
}
