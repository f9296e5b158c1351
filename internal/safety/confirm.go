package safety

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const tokenTTL = 5 * time.Minute

type pendingConfirmation struct {
	tool      string
	resource  string
	createdAt time.Time
}

// ConfirmationTracker issues single-use, time-limited tokens that a caller
// must echo back before a destructive tool runs. A token is bound to the
// tool and resource it was issued for.
type ConfirmationTracker struct {
	destructive map[string]struct{}
	now         func() time.Time

	mu     sync.Mutex
	tokens map[string]pendingConfirmation
}

// NewConfirmationTracker returns a tracker for the given destructive tools.
func NewConfirmationTracker(destructiveTools []string) *ConfirmationTracker {
	ct := &ConfirmationTracker{
		destructive: make(map[string]struct{}, len(destructiveTools)),
		now:         time.Now,
		tokens:      make(map[string]pendingConfirmation),
	}
	for _, tool := range destructiveTools {
		ct.destructive[tool] = struct{}{}
	}
	return ct
}

// NeedsConfirmation reports whether tool is in the destructive-tools set.
func (ct *ConfirmationTracker) NeedsConfirmation(tool string) bool {
	_, ok := ct.destructive[tool]
	return ok
}

// Approved reports whether tool may run on resource. Tools outside the
// destructive set are always approved; the rest must present a valid token,
// which is consumed.
func (ct *ConfirmationTracker) Approved(token, tool, resource string) bool {
	if !ct.NeedsConfirmation(tool) {
		return true
	}
	return ct.Confirm(token, tool, resource)
}

// RequestConfirmation issues a token for tool acting on resource.
func (ct *ConfirmationTracker) RequestConfirmation(tool, resource string) string {
	token := generateToken()

	ct.mu.Lock()
	defer ct.mu.Unlock()

	now := ct.now()
	for t, p := range ct.tokens {
		if now.Sub(p.createdAt) > tokenTTL {
			delete(ct.tokens, t)
		}
	}
	ct.tokens[token] = pendingConfirmation{tool: tool, resource: resource, createdAt: now}
	return token
}

// Confirm consumes token and reports whether it was issued for the same tool
// and resource and has not expired. A token is consumed even when it does not
// match, so a guessed token cannot be retried.
func (ct *ConfirmationTracker) Confirm(token, tool, resource string) bool {
	if token == "" {
		return false
	}

	ct.mu.Lock()
	defer ct.mu.Unlock()

	pending, ok := ct.tokens[token]
	if !ok {
		return false
	}
	delete(ct.tokens, token)

	if ct.now().Sub(pending.createdAt) > tokenTTL {
		return false
	}
	return pending.tool == tool && pending.resource == resource
}

// Pending returns the number of outstanding tokens.
func (ct *ConfirmationTracker) Pending() int {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return len(ct.tokens)
}

func generateToken() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(b[:])
}
