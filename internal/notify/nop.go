package notify

import (
	"context"
	"net/http"
)

// Nop drops every poke. Clients then rely on their own pull interval.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }

func (Nop) Subscribe(http.ResponseWriter, *http.Request, string) error { return ErrDisabled }

func (Nop) Close() error { return nil }
