// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

// echoHandler answers with the body it received and the Content-Encoding
// header left on the request.
func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())

		w.Header().Set("X-Seen-Encoding", r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func TestWithGZipRequest(t *testing.T) {
	payload := []byte(`{"email":"ana@example.com","password":"secret"}`)

	tests := []struct {
		name            string
		contentEncoding string
		body            []byte
		wantStatus      int
		wantBody        string
		wantSeenEnc     string
	}{
		{
			name:            "gzipped body is decompressed",
			contentEncoding: "gzip",
			body:            gzipBytes(t, payload),
			wantStatus:      http.StatusOK,
			wantBody:        string(payload),
		},
		{
			name:        "plain body passes through",
			body:        payload,
			wantStatus:  http.StatusOK,
			wantBody:    string(payload),
			wantSeenEnc: "",
		},
		{
			name:            "other encodings pass through untouched",
			contentEncoding: "br",
			body:            []byte("raw"),
			wantStatus:      http.StatusOK,
			wantBody:        "raw",
			wantSeenEnc:     "br",
		},
		{
			name:            "corrupt gzip is rejected",
			contentEncoding: "gzip",
			body:            []byte("definitely not gzip"),
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"message":"invalid gzip data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			withGZipRequest(echoHandler(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			assert.Equal(t, tt.wantSeenEnc, rec.Header().Get("X-Seen-Encoding"))
		})
	}
}

func TestWithGZipRequest_ReaderReusedAcrossRequests(t *testing.T) {
	handler := withGZipRequest(echoHandler(t))

	for _, msg := range []string{"first", "second", "third"} {
		req := httptest.NewRequest(http.MethodPost, "/anuncios", bytes.NewReader(gzipBytes(t, []byte(msg))))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, msg, rec.Body.String())
	}
}

func TestWrappedReadCloser_CloseRunsOnce(t *testing.T) {
	calls := 0
	rc := &wrappedReadCloser{
		Reader:  strings.NewReader(""),
		OnClose: func() { calls++ },
	}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, calls)
}
