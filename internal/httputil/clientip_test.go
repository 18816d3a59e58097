package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{name: "remote addr v4", remoteAddr: "192.168.1.1:12345", want: "192.168.1.1"},
		{name: "remote addr v6", remoteAddr: "[::1]:12345", want: "::1"},
		{name: "remote addr without port", remoteAddr: "192.168.1.1", want: "192.168.1.1"},
		{name: "headers ignored when untrusted", xff: "1.2.3.4", xri: "5.6.7.8", remoteAddr: "10.0.0.1:1234", want: "10.0.0.1"},
		{name: "xff single", trustProxy: true, xff: "1.2.3.4", remoteAddr: "10.0.0.1:1234", want: "1.2.3.4"},
		{name: "xff takes leftmost", trustProxy: true, xff: "1.2.3.4, 10.0.0.1, 10.0.0.2", remoteAddr: "10.0.0.3:1234", want: "1.2.3.4"},
		{name: "xff before x-real-ip", trustProxy: true, xff: "1.2.3.4", xri: "5.6.7.8", remoteAddr: "10.0.0.1:1234", want: "1.2.3.4"},
		{name: "x-real-ip fallback", trustProxy: true, xri: " 5.6.7.8 ", remoteAddr: "10.0.0.1:1234", want: "5.6.7.8"},
		{name: "garbage xff falls through", trustProxy: true, xff: "not-an-ip", xri: "5.6.7.8", remoteAddr: "10.0.0.1:1234", want: "5.6.7.8"},
		{name: "garbage headers use remote addr", trustProxy: true, xff: "<script>", xri: "x", remoteAddr: "10.0.0.1:1234", want: "10.0.0.1"},
		{name: "xff v6", trustProxy: true, xff: "2001:db8::1", remoteAddr: "10.0.0.1:1234", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &http.Request{RemoteAddr: tt.remoteAddr, Header: http.Header{}}
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			assert.Equal(t, tt.want, ClientIP(r, tt.trustProxy))
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusBadRequest, "bad year")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "bad year"}, body)
}
