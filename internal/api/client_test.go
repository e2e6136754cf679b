package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusConflict, KindValidation},
		{http.StatusNotFound, KindNotFound},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
		}))
		c := New(srv.URL, nil)
		err := c.get(context.Background(), "/articles", nil, nil)
		srv.Close()

		var apiErr *Error
		if !As(err, &apiErr) {
			t.Fatalf("status %d: err = %v, want *Error", tc.status, err)
		}
		if apiErr.Kind != tc.kind {
			t.Errorf("status %d: kind = %q, want %q", tc.status, apiErr.Kind, tc.kind)
		}
		if apiErr.Status != tc.status {
			t.Errorf("status = %d, want %d", apiErr.Status, tc.status)
		}
		if apiErr.Message != "nope" {
			t.Errorf("message = %q, want server envelope message", apiErr.Message)
		}
	}
}

func TestUnreachableHostIsNetworkError(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	err := c.get(context.Background(), "/articles", nil, nil)
	if !IsNetwork(err) {
		t.Fatalf("err = %v, want network kind", err)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx := WithToken(context.Background(), "tok-abc")
	if err := c.get(ctx, "/profile", nil, nil); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer tok-abc" {
		t.Errorf("Authorization = %q", got)
	}

	if err := c.get(context.Background(), "/profile", nil, nil); err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("anonymous request carried Authorization %q", got)
	}
}

func TestEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	var out map[string]any
	if err := c.get(context.Background(), "/ping", nil, &out); err != nil {
		t.Fatalf("empty 204 body should not error: %v", err)
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsUnauthorized(&Error{Kind: KindUnauthorized}) {
		t.Error("IsUnauthorized")
	}
	if !IsValidation(&Error{Kind: KindValidation}) {
		t.Error("IsValidation")
	}
	if !IsNotFound(&Error{Kind: KindNotFound}) {
		t.Error("IsNotFound")
	}
	if IsUnauthorized(context.Canceled) {
		t.Error("plain error misclassified")
	}
}
