package session

import (
	"context"
	"sync"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

// Binding ties a browser's session to the API client. It satisfies
// apiclient.Credentials: Token supplies the bearer value and Revoke is the
// single teardown path taken when the backend rejects it.
type Binding struct {
	store     Store
	browserID string

	mu      sync.Mutex
	session models.Session
	revoked bool
}

func Bind(store Store, browserID string, s models.Session) *Binding {
	return &Binding{store: store, browserID: browserID, session: s}
}

func (b *Binding) Token() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.Token
}

func (b *Binding) Session() models.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// Revoke clears the stored session. Safe to call more than once.
func (b *Binding) Revoke(ctx context.Context) error {
	b.mu.Lock()
	b.session = models.Session{}
	b.revoked = true
	b.mu.Unlock()
	return b.store.Clear(ctx, b.browserID)
}

func (b *Binding) isRevoked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked
}
