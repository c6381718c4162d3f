package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

func TestGetDecodesSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Health/u1/by-date" {
			t.Fatalf("expected path /Health/u1/by-date, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("date") != "2024-07-15" {
			t.Fatalf("expected date query 2024-07-15, got %s", r.URL.Query().Get("date"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"h1"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	query := url.Values{}
	query.Set("date", "2024-07-15")

	records, err := Get[[]map[string]string](context.Background(), client, "/Health/u1/by-date", query)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(records) != 1 || records[0]["id"] != "h1" {
		t.Fatalf("expected one record with id h1, got %v", records)
	}
}

func TestErrorMessagePrefersBodyMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	_, err := Get[[]string](context.Background(), NewClient(server.URL), "/Mood/u1/by-date", nil)
	apiError, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *rest.Error, got %T", err)
	}
	if apiError.Message != "not found" {
		t.Fatalf("expected message %q, got %q", "not found", apiError.Message)
	}
	if apiError.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apiError.StatusCode)
	}
}

func TestErrorMessageFallsBackToErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid range"}`))
	}))
	defer server.Close()

	_, err := Get[[]string](context.Background(), NewClient(server.URL), "/Health/u1/between-dates", nil)
	if MessageOf(err) != "invalid range" {
		t.Fatalf("expected message %q, got %q", "invalid range", MessageOf(err))
	}
}

func TestErrorMessageFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := Get[[]string](context.Background(), NewClient(server.URL), "/Health/u1/by-date", nil)
	if MessageOf(err) != "Internal Server Error" {
		t.Fatalf("expected status text fallback, got %q", MessageOf(err))
	}
}

func TestTransportFailureHasNoStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := Get[[]string](context.Background(), NewClient(server.URL), "/Health/u1/by-date", nil)
	apiError, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *rest.Error, got %T", err)
	}
	if apiError.StatusCode != 0 {
		t.Fatalf("expected no status code for transport failure, got %d", apiError.StatusCode)
	}
	if apiError.Message == "" {
		t.Fatal("expected a transport error message")
	}
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := Delete(context.Background(), NewClient(server.URL), "/Health/h1"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Fatalf("expected json content type, got %s", r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"m1","name":"test"}`))
	}))
	defer server.Close()

	created, err := Post[map[string]string, map[string]string](
		context.Background(), NewClient(server.URL), "/Medication", map[string]string{"name": "test"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if created["id"] != "m1" {
		t.Fatalf("expected created id m1, got %v", created)
	}
}

func TestMetricsCountRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	client := NewClient(server.URL, WithMetrics(registry))

	if _, err := Get[[]string](context.Background(), client, "/Health/u1/by-date", nil); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("expected gather to succeed, got %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() == "healthmate_api_requests_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected healthmate_api_requests_total to be registered and populated")
	}
}

func TestRateLimitedClientStillCompletes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithRateLimit(rate.Limit(100), 1))
	for i := 0; i < 3; i++ {
		if _, err := Get[[]string](context.Background(), client, "/Health/u1/by-date", nil); err != nil {
			t.Fatalf("expected request %d to succeed, got %v", i, err)
		}
	}
}
