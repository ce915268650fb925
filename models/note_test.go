// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredFiles_Value(t *testing.T) {
	var nilFiles StoredFiles
	v, err := nilFiles.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	files := StoredFiles{{ID: "f1", Name: "a.txt", URL: "https://example.com/a.txt"}}
	v, err = files.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"f1","name":"a.txt","url":"https://example.com/a.txt"}]`, string(v.([]byte)))
}

func TestStoredFiles_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    StoredFiles
		wantErr bool
	}{
		{name: "nil becomes empty", src: nil, want: StoredFiles{}},
		{name: "bytes", src: []byte(`[{"id":"f1","name":"n","url":"u"}]`), want: StoredFiles{{ID: "f1", Name: "n", URL: "u"}}},
		{name: "string", src: `[]`, want: StoredFiles{}},
		{name: "unsupported type", src: 42, wantErr: true},
		{name: "broken json", src: []byte(`{`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StoredFiles
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
