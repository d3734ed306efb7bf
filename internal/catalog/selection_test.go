package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionRoundTrip(t *testing.T) {
	sel := NewSelections()

	r := sel.BeginRender(100)
	token := r.Token("Сёдла", 0)

	ref, err := sel.Resolve(100, token)
	require.NoError(t, err)
	require.Equal(t, Ref{Category: "Сёдла", Index: 0}, ref)
}

func TestSelectionRejectsForeignChat(t *testing.T) {
	sel := NewSelections()
	token := sel.BeginRender(100).Token("Сёдла", 0)

	_, err := sel.Resolve(200, token)
	require.ErrorIs(t, err, ErrInvalidSelection)
}

func TestSelectionRerenderInvalidatesOnlyOwnChat(t *testing.T) {
	sel := NewSelections()

	tokenA := sel.BeginRender(1).Token("Сёдла", 0)
	tokenB := sel.BeginRender(2).Token("Бриджи", 1)

	// Chat 1 re-renders: its old token dies, chat 2's stays valid.
	sel.BeginRender(1).Token("Сёдла", 0)

	_, err := sel.Resolve(1, tokenA)
	require.ErrorIs(t, err, ErrInvalidSelection)

	ref, err := sel.Resolve(2, tokenB)
	require.NoError(t, err)
	require.Equal(t, Ref{Category: "Бриджи", Index: 1}, ref)
}

func TestSelectionRejectsGarbage(t *testing.T) {
	sel := NewSelections()
	sel.BeginRender(1).Token("Сёдла", 0)

	for _, token := range []string{"", "1", "1.x", "abc.def.ghi", "1.wrongnonce.Сёдла:0"} {
		_, err := sel.Resolve(1, token)
		require.ErrorIs(t, err, ErrInvalidSelection, "token %q", token)
	}
}

func TestSelectionDrop(t *testing.T) {
	sel := NewSelections()
	token := sel.BeginRender(5).Token("Сёдла", 0)
	sel.Drop(5)

	_, err := sel.Resolve(5, token)
	require.ErrorIs(t, err, ErrInvalidSelection)
}
