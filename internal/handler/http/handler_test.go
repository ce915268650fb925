package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-note-sync-test"
	testUserID  = "user-1"
)

type testHandler struct {
	handler  *Handler
	router   http.Handler
	sync     *mock.MockSyncService
	appInfo  *mock.MockAppInfoService
	notifier *mock.MockSubscribingNotifier
}

func newTestHandler(t *testing.T) testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	syncService := mock.NewMockSyncService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	notifier := mock.NewMockSubscribingNotifier(ctrl)

	h := NewHandler(
		&service.Services{SyncService: syncService, AppInfoService: appInfo},
		notifier,
		config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
		logger.Nop(),
	)

	return testHandler{handler: h, router: h.Init(), sync: syncService, appInfo: appInfo, notifier: notifier}
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, testUserID))
	return req
}

func (th testHandler) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorBody {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
