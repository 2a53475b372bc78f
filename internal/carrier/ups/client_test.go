package ups

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:     srv.URL,
		Credentials: testCreds,
	}, zerolog.Nop())

	return client, srv
}

func TestClient_Track(t *testing.T) {
	var gotPath string
	var gotBody string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(fullResponse))
	})

	result, err := client.Track(context.Background(), "1Z12345E0291980793")
	if err != nil {
		t.Fatalf("Track: %v", err)
	}

	if gotPath != "/Track" {
		t.Fatalf("path = %q", gotPath)
	}
	if !strings.Contains(gotBody, "<TrackingNumber>1Z12345E0291980793</TrackingNumber>") {
		t.Fatalf("request body missing tracking number:\n%s", gotBody)
	}
	if !strings.Contains(gotBody, "<AccessLicenseNumber>LICENSE123</AccessLicenseNumber>") {
		t.Fatalf("request body missing credentials:\n%s", gotBody)
	}

	if result.ServiceType != "EXPRESS SAVER" {
		t.Fatalf("service type = %q", result.ServiceType)
	}
	if result.SignatureName != "J DOE" {
		t.Fatalf("signature = %q", result.SignatureName)
	}
}

func TestClient_Track_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "carrier down", http.StatusInternalServerError)
	})

	if _, err := client.Track(context.Background(), "1Z999"); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestClient_Track_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fullResponse))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Track(ctx, "1Z999"); err == nil {
		t.Fatalf("expected error with cancelled context")
	}
}
