// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestGZip(t *testing.T) {
	pullBody := `{"clientGroupId":"g1","cookie":null}`
	patch := `{"patch":[` + strings.Repeat(`{"op":"put","key":"note/n1","value":{}},`, 200) + `{"op":"clear"}]}`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            io.Reader
		wantStatus      int
		wantGzipped     bool
	}{
		{name: "plain request and response", body: strings.NewReader(pullBody), wantStatus: http.StatusOK},
		{name: "gzipped response", acceptEncoding: "gzip, deflate, br", body: strings.NewReader(pullBody), wantStatus: http.StatusOK, wantGzipped: true},
		{name: "gzipped request", contentEncoding: "gzip", body: gzipBytes(t, []byte(pullBody)), wantStatus: http.StatusOK},
		{name: "gzipped both ways", acceptEncoding: "gzip", contentEncoding: "gzip", body: gzipBytes(t, []byte(pullBody)), wantStatus: http.StatusOK, wantGzipped: true},
		{name: "corrupt gzip request", contentEncoding: "gzip", body: strings.NewReader("not gzip"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, pullBody, string(body))
				assert.Empty(t, r.Header.Get("Content-Encoding"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(patch))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/replicache/pull", tt.body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			if !tt.wantGzipped {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, patch, rr.Body.String())
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			zr, err := gzip.NewReader(rr.Body)
			require.NoError(t, err)
			defer zr.Close()
			decompressed, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, patch, string(decompressed))
		})
	}
}

func TestGZip_ImplicitWriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}
