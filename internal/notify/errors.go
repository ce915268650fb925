package notify

import "errors"

var (
	ErrUnknownDriver = errors.New("unknown notifier driver")
	ErrHubClosed     = errors.New("notification hub is closed")
	ErrDisabled      = errors.New("wake-up channel is disabled")
	ErrUpgrading     = errors.New("error upgrading connection to websocket")
)
