// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubConfig struct {
	development bool
	origins     []string
}

func (c *stubConfig) IsDevelopment() bool      { return c.development }
func (c *stubConfig) AllowedOrigins() []string { return c.origins }

/*
TestOriginAllowed verifies allow-list matching stays on domain boundaries:
subdomains of an allowed domain match, lookalike registrations do not.
*/
func TestOriginAllowed(t *testing.T) {
	allowed := []string{"mustafazahid.com"}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"exact_domain", "https://mustafazahid.com", true},
		{"www_subdomain", "https://www.mustafazahid.com", true},
		{"deep_subdomain", "https://admin.dashboard.mustafazahid.com", true},
		{"with_port", "https://mustafazahid.com:8443", true},
		{"lookalike_registration", "https://evil-mustafazahid.com", false},
		{"domain_as_prefix", "https://mustafazahid.com.attacker.net", false},
		{"unrelated", "https://example.com", false},
		{"not_a_url", "::::", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, originAllowed(tt.origin, allowed))
		})
	}
}

/*
TestCORS_ProductionOrigins verifies the full middleware only reflects
allow-listed origins outside development.
*/
func TestCORS_ProductionOrigins(t *testing.T) {
	cfg := &stubConfig{origins: []string{"mustafazahid.com"}}
	handler := CORS(cfg)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed origin is reflected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/classes", nil)
		request.Header.Set("Origin", "https://www.mustafazahid.com")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "https://www.mustafazahid.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("lookalike origin gets no CORS headers", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/classes", nil)
		request.Header.Set("Origin", "https://evil-mustafazahid.com")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("development reflects any origin", func(t *testing.T) {
		devHandler := CORS(&stubConfig{development: true})(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))

		request := httptest.NewRequest(http.MethodGet, "/api/classes", nil)
		request.Header.Set("Origin", "http://localhost:3000")
		recorder := httptest.NewRecorder()

		devHandler.ServeHTTP(recorder, request)

		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
