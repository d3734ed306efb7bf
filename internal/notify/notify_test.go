package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu    sync.Mutex
	sent  map[int64][]string
	fails map[int64]error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(map[int64][]string), fails: make(map[int64]error)}
}

func (f *fakeSender) SendTo(_ context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fails[chatID]; err != nil {
		return err
	}
	f.sent[chatID] = append(f.sent[chatID], text)
	return nil
}

func TestDeliverFanOut(t *testing.T) {
	fs := newFakeSender()
	n := New(fs, nil)

	outcomes := n.Deliver(context.Background(), []int64{111, 222}, "🛒 Предзаказ")
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		require.NoError(t, o.Err)
	}
	require.Equal(t, []string{"🛒 Предзаказ"}, fs.sent[111])
	require.Equal(t, []string{"🛒 Предзаказ"}, fs.sent[222])
}

func TestDeliverIsolatesFailures(t *testing.T) {
	fs := newFakeSender()
	boom := errors.New("chat not found")
	fs.fails[111] = boom

	n := New(fs, nil)
	outcomes := n.Deliver(context.Background(), []int64{111, 222}, "hi")

	require.Len(t, outcomes, 2)
	require.ErrorIs(t, outcomes[0].Err, boom)
	require.NoError(t, outcomes[1].Err)
	require.Equal(t, []string{"hi"}, fs.sent[222])
}

func TestDeliverSkipsZeroRecipients(t *testing.T) {
	fs := newFakeSender()
	n := New(fs, nil)

	outcomes := n.Deliver(context.Background(), []int64{0, 333}, "hi")
	require.Len(t, outcomes, 1)
	require.EqualValues(t, 333, outcomes[0].Recipient)
}
