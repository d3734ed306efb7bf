package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistryStartWhileActive(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	_, err := r.Start(ctx, 1, KindClubJoin, nil)
	require.NoError(t, err)

	_, err = r.Start(ctx, 1, KindPreOrder, nil)
	require.ErrorIs(t, err, ErrAlreadyActive)

	// The original session is untouched.
	kind, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, KindClubJoin, kind)
}

func TestRegistryAdvanceWithoutSession(t *testing.T) {
	r := newTestRegistry()
	_, err := r.Advance(context.Background(), 1, Event{Text: "hi"})
	require.ErrorIs(t, err, ErrNoSession)
}

func TestRegistryUnknownKind(t *testing.T) {
	r := newTestRegistry()
	_, err := r.Start(context.Background(), 1, Kind("bogus"), nil)
	require.Error(t, err)
	require.False(t, r.InProgress(1))
}

func TestRegistryEnd(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	_, err := r.Start(ctx, 1, KindPreOrder, nil)
	require.NoError(t, err)
	require.Equal(t, 1, r.Active())

	r.End(ctx, 1)
	require.Equal(t, 0, r.Active())

	// Ending an absent session is a no-op.
	r.End(ctx, 1)
}

func TestRegistryJanitorReclaimsIdleSessions(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(10*time.Minute, PreOrder{}, ClubJoin{})

	base := time.Now()
	r.now = func() time.Time { return base }

	_, err := r.Start(ctx, 1, KindPreOrder, nil)
	require.NoError(t, err)
	_, err = r.Start(ctx, 2, KindClubJoin, nil)
	require.NoError(t, err)

	// Chat 2 stays active, chat 1 goes idle past the TTL.
	r.now = func() time.Time { return base.Add(9 * time.Minute) }
	_, err = r.Advance(ctx, 2, Event{Text: "Анна"})
	require.NoError(t, err)

	var expired []int64
	r.OnExpire = func(chatID int64, _ Kind) { expired = append(expired, chatID) }

	r.now = func() time.Time { return base.Add(11 * time.Minute) }
	r.sweep(ctx)

	require.Equal(t, []int64{1}, expired)
	require.False(t, r.InProgress(1))
	require.True(t, r.InProgress(2))
}
