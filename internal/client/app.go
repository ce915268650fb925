package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/sethvargo/go-retry"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
)

type App struct {
	adapter adapter.ServerAdapter
	cfg     config.ClientApp
	out     io.Writer
	ids     *utils.UUIDGenerator

	retryBase time.Duration
	logger    *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg config.ClientApp, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:   serverAdapter,
		cfg:       cfg,
		out:       out,
		ids:       utils.NewUUIDGenerator(),
		retryBase: retryBaseDelay,
		logger:    logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	switch args[0] {
	case "id":
		_, err := fmt.Fprintln(a.out, a.ids.Generate())
		return err
	case "token":
		return a.token(args[1:])
	case "push":
		return a.push(ctx, args[1:])
	case "pull":
		return a.pull(ctx, args[1:])
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], usage)
	}
}

func (a *App) token(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	token, err := a.signToken(args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) push(ctx context.Context, args []string) error {
	if len(args) < 5 || len(args) > 6 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	mutationID, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: mutation id: %v", ErrUsage, err)
	}

	mutationArgs := json.RawMessage(`{}`)
	if len(args) == 6 {
		if !json.Valid([]byte(args[5])) {
			return fmt.Errorf("%w: args are not valid JSON", ErrUsage)
		}
		mutationArgs = json.RawMessage(args[5])
	}

	if err = a.authenticate(args[0]); err != nil {
		return err
	}

	request := models.PushRequest{
		ClientGroupID: args[1],
		Mutations: []models.Mutation{{
			ID:        mutationID,
			ClientID:  args[2],
			Name:      models.MutationName(args[4]),
			Args:      mutationArgs,
			Timestamp: float64(time.Now().UnixMilli()),
		}},
	}

	var response models.PushResponse
	err = a.withRetry(ctx, func(ctx context.Context) error {
		var callErr error
		response, callErr = a.adapter.Push(ctx, request)
		return callErr
	})
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}

	return a.print(response)
}

func (a *App) pull(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	request := models.PullRequest{ClientGroupID: args[1]}
	if len(args) == 3 {
		order, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: cookie order: %v", ErrUsage, err)
		}
		request.Cookie = &models.Cookie{ClientGroupID: args[1], Order: order}
	}

	if err := a.authenticate(args[0]); err != nil {
		return err
	}

	var response models.PullResponse
	err := a.withRetry(ctx, func(ctx context.Context) error {
		var callErr error
		response, callErr = a.adapter.Pull(ctx, request)
		return callErr
	})
	if err != nil {
		return fmt.Errorf("pull: %w", err)
	}

	return a.print(response)
}

func (a *App) signToken(userID string) (string, error) {
	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, userID, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token.SignedString, nil
}

func (a *App) authenticate(userID string) error {
	token, err := a.signToken(userID)
	if err != nil {
		return err
	}
	a.adapter.SetToken(token)
	return nil
}

// withRetry repeats fn while the server reports a conflict or is unavailable.
func (a *App) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryAttempts-1, retry.NewExponential(a.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if errors.Is(err, adapter.ErrConflict) || errors.Is(err, adapter.ErrUnavailable) {
			a.logger.Warn().Err(err).Msg("retrying sync call")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
