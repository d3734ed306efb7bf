package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrInvalidSelection signals a selection token that is stale, foreign,
// or tampered with.
var ErrInvalidSelection = errors.New("catalog: invalid selection token")

// Ref identifies one catalog item by its stable identity.
type Ref struct {
	Category string
	Index    int
}

// Selections maps short-lived selection tokens back to catalog items.
// Tokens are scoped per chat and per render generation: re-rendering a
// catalog listing for a chat invalidates only that chat's previous tokens,
// never another chat's in-flight selection.
type Selections struct {
	mu   sync.Mutex
	gens map[int64]*generation
}

type generation struct {
	nonce string
	keys  map[string]Ref
}

// NewSelections returns an empty token table.
func NewSelections() *Selections {
	return &Selections{gens: make(map[int64]*generation)}
}

// Render describes one catalog render for one chat. Tokens minted from the
// same Render share a generation nonce.
type Render struct {
	parent *Selections
	chatID int64
	gen    *generation
}

// BeginRender starts a new render generation for the chat, invalidating all
// tokens from the chat's previous render.
func (s *Selections) BeginRender(chatID int64) *Render {
	gen := &generation{
		nonce: strings.SplitN(uuid.NewString(), "-", 2)[0],
		keys:  make(map[string]Ref),
	}
	s.mu.Lock()
	s.gens[chatID] = gen
	s.mu.Unlock()
	return &Render{parent: s, chatID: chatID, gen: gen}
}

// Token registers the item under the render's generation and returns the
// opaque token to embed in its selection button.
func (r *Render) Token(category string, index int) string {
	key := category + ":" + strconv.Itoa(index)
	r.parent.mu.Lock()
	r.gen.keys[key] = Ref{Category: category, Index: index}
	r.parent.mu.Unlock()
	return fmt.Sprintf("%d.%s.%s", r.chatID, r.gen.nonce, key)
}

// Resolve maps a token echoed back by a selection action to its item.
// The token must belong to the given chat and to its current generation.
func (s *Selections) Resolve(chatID int64, token string) (Ref, error) {
	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 {
		return Ref{}, ErrInvalidSelection
	}
	tokenChat, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || tokenChat != chatID {
		return Ref{}, ErrInvalidSelection
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	gen := s.gens[chatID]
	if gen == nil || gen.nonce != parts[1] {
		return Ref{}, ErrInvalidSelection
	}
	ref, ok := gen.keys[parts[2]]
	if !ok {
		return Ref{}, ErrInvalidSelection
	}
	return ref, nil
}

// Drop discards the chat's current generation, if any.
func (s *Selections) Drop(chatID int64) {
	s.mu.Lock()
	delete(s.gens, chatID)
	s.mu.Unlock()
}
