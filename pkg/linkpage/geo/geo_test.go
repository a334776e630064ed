package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/203.0.113.7/json/" {
			t.Errorf("Unexpected lookup path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ip":"203.0.113.7","city":"Lisbon","country_name":"Portugal"}`))
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, time.Second)
	location := resolver.Resolve(context.Background(), "203.0.113.7")

	if location.City != "Lisbon" {
		t.Errorf("Expected city Lisbon, got %q", location.City)
	}
	if location.Country != "Portugal" {
		t.Errorf("Expected country Portugal, got %q", location.Country)
	}
}

func TestResolvePartialPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"country_name":"Brazil"}`))
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, time.Second)
	location := resolver.Resolve(context.Background(), "203.0.113.8")

	if location.City != "" {
		t.Errorf("Expected empty city, got %q", location.City)
	}
	if location.Country != "Brazil" {
		t.Errorf("Expected country Brazil, got %q", location.Country)
	}
}

func TestResolveLocalTrafficSkipsLookup(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, time.Second)

	for _, ip := range []string{"", "::1", "127.0.0.1", "127.1.2.3"} {
		location := resolver.Resolve(context.Background(), ip)
		if location.City != "" || location.Country != "" {
			t.Errorf("Expected empty location for local IP %q, got %+v", ip, location)
		}
	}

	if called {
		t.Error("Expected no network call for local traffic")
	}
}

func TestResolveErrorStatusDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, time.Second)
	location := resolver.Resolve(context.Background(), "203.0.113.9")

	if location.City != "" || location.Country != "" {
		t.Errorf("Expected empty location on error status, got %+v", location)
	}
}

func TestResolveMalformedPayloadDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, time.Second)
	location := resolver.Resolve(context.Background(), "203.0.113.10")

	if location.City != "" || location.Country != "" {
		t.Errorf("Expected empty location on malformed payload, got %+v", location)
	}
}

func TestResolveTimeoutDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	resolver := NewResolver(server.URL, 20*time.Millisecond)
	location := resolver.Resolve(context.Background(), "203.0.113.11")

	if location.City != "" || location.Country != "" {
		t.Errorf("Expected empty location on timeout, got %+v", location)
	}
}

func TestResolveUnreachableHostDegrades(t *testing.T) {
	// Reserved port on loopback; connection is refused immediately
	resolver := NewResolver("http://127.0.0.1:1", 100*time.Millisecond)
	location := resolver.Resolve(context.Background(), "203.0.113.12")

	if location.City != "" || location.Country != "" {
		t.Errorf("Expected empty location when provider is unreachable, got %+v", location)
	}
}
