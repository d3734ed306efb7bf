package bot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ridness/clubbot/internal/catalog"
	"github.com/ridness/clubbot/internal/club"
	appconfig "github.com/ridness/clubbot/internal/config"
	"github.com/ridness/clubbot/internal/conversation"
	"github.com/ridness/clubbot/internal/notify"
	"github.com/ridness/clubbot/internal/orders"
	"github.com/stretchr/testify/require"

	tele "gopkg.in/telebot.v4"
)

// recordingSender captures fan-out recipients instead of talking to Telegram.
type recordingSender struct {
	mu   sync.Mutex
	sent []int64
}

func (r *recordingSender) SendTo(_ context.Context, chatID int64, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, chatID)
	return nil
}

func (r *recordingSender) recipients() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.sent...)
}

// fakeContext implements the slice of tele.Context the handlers touch.
// Everything else panics via the embedded nil interface.
type fakeContext struct {
	tele.Context
	chat *tele.Chat
	user *tele.User
	text string
	msg  *tele.Message
	cb   *tele.Callback
	kv   map[string]any

	sent      []string
	responses []*tele.CallbackResponse
}

func newFakeContext(chatID int64, text string) *fakeContext {
	return &fakeContext{
		chat: &tele.Chat{ID: chatID},
		user: &tele.User{ID: chatID},
		text: text,
		kv:   make(map[string]any),
	}
}

func (c *fakeContext) Update() tele.Update      { return tele.Update{ID: 1} }
func (c *fakeContext) Chat() *tele.Chat         { return c.chat }
func (c *fakeContext) Sender() *tele.User       { return c.user }
func (c *fakeContext) Text() string             { return c.text }
func (c *fakeContext) Callback() *tele.Callback { return c.cb }
func (c *fakeContext) Get(key string) any       { return c.kv[key] }
func (c *fakeContext) Set(key string, v any)    { c.kv[key] = v }

func (c *fakeContext) Message() *tele.Message {
	if c.msg != nil {
		return c.msg
	}
	return &tele.Message{Text: c.text}
}

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	r := &tele.CallbackResponse{}
	if len(resp) > 0 {
		r = resp[0]
	}
	c.responses = append(c.responses, r)
	return nil
}

func newTestApp() (*App, *catalog.MemorySource, *club.MemoryStore, *recordingSender) {
	cfg := &appconfig.AppConfig{}
	cfg.Core.Telegram.AdminID = 42
	cfg.Club.GroupID = -100200
	cfg.Club.PromoCode = "RIDNESS10"
	cfg.Club.SiteURL = "https://ridness.ru"

	source := catalog.NewMemorySource()
	store := club.NewMemoryStore()
	rec := &recordingSender{}

	app := &App{
		cfg:        cfg,
		store:      store,
		source:     source,
		selections: catalog.NewSelections(),
		sessions:   conversation.NewRegistry(time.Minute, conversation.PreOrder{}, conversation.ClubJoin{}),
		counter:    orders.NewCounter(),
		notifier:   notify.New(rec, nil),
	}
	return app, source, store, rec
}

func TestAddSaleRejectsNonInteger(t *testing.T) {
	app, _, _, _ := newTestApp()

	c := newFakeContext(42, "/add_sale три")
	c.msg = &tele.Message{Text: c.text, Payload: "три"}

	require.NoError(t, app.handleAddSale(c))
	require.Equal(t, []string{textAddSaleUsage}, c.sent)
	require.EqualValues(t, 0, app.counter.Total())
}

func TestAddSaleAdjustsCounter(t *testing.T) {
	app, _, _, _ := newTestApp()

	c := newFakeContext(42, "/add_sale 5")
	c.msg = &tele.Message{Text: c.text, Payload: "5"}

	require.NoError(t, app.handleAddSale(c))
	require.EqualValues(t, 5, app.counter.Total())
	require.Equal(t, []string{textSaleAdded(5, 5)}, c.sent)
}

func TestCatalogGateStopsGuestsWithoutSideEffects(t *testing.T) {
	app, source, _, rec := newTestApp()
	source.AddItem("Сёдла", catalog.Item{Name: "Седло выездковое", Price: "120 000 ₽"})

	c := newFakeContext(100, labelCatalog)
	require.NoError(t, app.handleCatalog(c))

	require.Equal(t, []string{textMembersOnly}, c.sent)
	require.Zero(t, app.sessions.Active())
	require.Empty(t, rec.recipients())
}

func TestOrderCallbackStartsSessionAndRetiresTokens(t *testing.T) {
	app, source, store, _ := newTestApp()
	source.AddItem("Сёдла", catalog.Item{Name: "Седло выездковое", Price: "120 000 ₽"})
	require.NoError(t, store.Append(context.Background(), club.Member{
		ChatID: 7,
		Name:   "Anna",
		Phone:  "+10000000000",
	}))

	token := app.selections.BeginRender(7).Token("Сёдла", 0)

	c := newFakeContext(7, "")
	c.cb = &tele.Callback{Unique: cbOrder, Data: token}

	require.NoError(t, app.handleOrderCallback(c))
	require.True(t, app.sessions.InProgress(7))
	require.Equal(t, []string{"Количество:"}, c.sent)

	// The listing's buttons must be dead while the form is live.
	_, err := app.selections.Resolve(7, token)
	require.ErrorIs(t, err, catalog.ErrInvalidSelection)
}

func TestUnknownCallbackAnswersWithAlert(t *testing.T) {
	app, _, _, _ := newTestApp()

	c := newFakeContext(7, "")
	c.cb = &tele.Callback{Unique: "retired_button"}

	require.NoError(t, app.UnknownCallback()(c))
	require.Len(t, c.responses, 1)
	require.Equal(t, textUnknownCallback, c.responses[0].Text)
}

func TestUnknownTextFallsBackToMenu(t *testing.T) {
	app, _, _, _ := newTestApp()

	c := newFakeContext(100, "что-то непонятное")
	require.NoError(t, app.UnknownText()(c))
	require.Equal(t, []string{textUnknown}, c.sent)
}
