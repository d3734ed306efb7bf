package club

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndLookup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ok, err := store.IsMember(ctx, 100)
	require.NoError(t, err)
	require.False(t, ok)

	err = store.Append(ctx, Member{ChatID: 100, Name: "Anna", Phone: "+10000000000", Email: "anna@example.com"})
	require.NoError(t, err)

	ok, err = store.IsMember(ctx, 100)
	require.NoError(t, err)
	require.True(t, ok)

	m, err := store.Find(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "Anna", m.Name)
	require.False(t, m.JoinedAt.IsZero())

	n, err := store.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestMemoryStoreDuplicateAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := Member{ChatID: 7, Name: "First"}
	require.NoError(t, store.Append(ctx, first))

	err := store.Append(ctx, Member{ChatID: 7, Name: "Second"})
	require.ErrorIs(t, err, ErrDuplicate)

	// First writer wins: the original record is untouched.
	m, err := store.Find(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "First", m.Name)
}

func TestMemoryStoreConcurrentAppendSameChat(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Append(ctx, Member{ChatID: 1, Name: "Race"})
		}()
	}
	wg.Wait()
	close(errs)

	var committed, dup int
	for err := range errs {
		switch {
		case err == nil:
			committed++
		default:
			require.ErrorIs(t, err, ErrDuplicate)
			dup++
		}
	}
	require.Equal(t, 1, committed)
	require.Equal(t, 9, dup)
}

func TestMemberContact(t *testing.T) {
	require.Equal(t, "+1", Member{Phone: "+1", Email: "a@b"}.Contact())
	require.Equal(t, "a@b", Member{Email: "a@b"}.Contact())
	require.Equal(t, "a@b", Member{Phone: "  ", Email: "a@b"}.Contact())
}
