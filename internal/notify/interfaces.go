//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock -mock_names=Notifier=MockSubscribingNotifier

package notify

import (
	"context"
	"net/http"
)

// Notifier delivers pokes and accepts subscriptions.
type Notifier interface {
	// Notify pokes every connection of userID. It never blocks on a slow
	// connection.
	Notify(ctx context.Context, userID string) error
	// Subscribe upgrades the request to a websocket and keeps it registered
	// for userID until the peer goes away. It blocks for the connection's
	// lifetime.
	Subscribe(w http.ResponseWriter, r *http.Request, userID string) error
	Close() error
}
