package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusRequestTimeout:      ErrTimeout,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// errorMessage extracts "CODE: message" from the server error envelope,
// falling back to the raw body.
func errorMessage(body []byte) string {
	var envelope utils.ErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		if envelope.Code != "" {
			return envelope.Code + ": " + envelope.Error
		}
		return envelope.Error
	}
	return strings.TrimSpace(string(body))
}

var codeErrors = map[codes.Code]error{
	codes.InvalidArgument:    ErrBadRequest,
	codes.Unauthenticated:    ErrUnauthorized,
	codes.PermissionDenied:   ErrForbidden,
	codes.NotFound:           ErrNotFound,
	codes.Aborted:            ErrConflict,
	codes.FailedPrecondition: ErrUnprocessable,
	codes.DeadlineExceeded:   ErrTimeout,
	codes.Internal:           ErrInternalServerError,
	codes.Unavailable:        ErrUnavailable,
}

func mapGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if sentinel, found := codeErrors[st.Code()]; found {
		return fmt.Errorf("%w: %s", sentinel, st.Message())
	}
	return fmt.Errorf("grpc %s: %s", st.Code(), st.Message())
}
