package notify

import (
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// New builds the notifier selected by cfg.Driver. An empty driver means
// websocket.
func New(cfg config.Notifier, log *logger.Logger) (Notifier, error) {
	switch cfg.Driver {
	case config.NotifierDriverWebsocket, "":
		return NewHub(cfg, log), nil
	case config.NotifierDriverNop:
		return Nop{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}
