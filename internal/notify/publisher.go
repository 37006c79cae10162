// Package notify delivers appointment events to other services without ever holding up
// the booking path.
package notify

import (
	"context"
	"encoding/json"

	"medislot/internal/domain"
)

// Publisher sends one event to a broker. Implementations are called from dispatcher
// workers and must be safe for concurrent use.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, ev domain.BookedEvent) error
	Close() error
}

func encodeEvent(ev domain.BookedEvent) ([]byte, error) {
	return json.Marshal(ev)
}
