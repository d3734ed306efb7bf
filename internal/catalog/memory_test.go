package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySourceOrdering(t *testing.T) {
	ctx := context.Background()
	src := NewMemorySource()
	src.AddItem("Сёдла", Item{Name: "Седло выездковое", Price: "120 000 ₽"})
	src.AddItem("Сёдла", Item{Name: "Седло конкурное", Price: "135 000 ₽"})
	src.AddItem("Бриджи", Item{Name: "Бриджи летние", Price: "9 000 ₽"})

	cats, err := src.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Сёдла", "Бриджи"}, cats)

	items, err := src.Items(ctx, "Сёдла")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 0, items[0].Position)
	require.Equal(t, 1, items[1].Position)
	require.Equal(t, "Седло выездковое", items[0].Name)

	// Repeated reads are structurally identical.
	again, err := src.Items(ctx, "Сёдла")
	require.NoError(t, err)
	require.Equal(t, items, again)
}

func TestMemorySourceUnknownCategory(t *testing.T) {
	src := NewMemorySource()
	items, err := src.Items(context.Background(), "нет такой")
	require.NoError(t, err)
	require.Empty(t, items)
}
