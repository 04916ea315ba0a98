// Package session keeps the questions already asked in a quiz session so
// that clients only need to send a session id.
package session

import (
	"context"
	"time"

	"github.com/milindvishnoi/FSND/picker"
)

// DefaultTTL is how long an idle quiz session is kept
const DefaultTTL = 2 * time.Hour

// Store persists the asked question ids of quiz sessions
type Store interface {
	// Load returns the asked ids of a session; missing sessions load empty.
	Load(ctx context.Context, id string) (picker.IDSet, error)
	// Add records a question as asked and refreshes the session TTL.
	Add(ctx context.Context, id string, questionID int) error
	// Delete drops a session and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
