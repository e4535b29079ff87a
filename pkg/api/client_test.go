package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beethoven.dev/beethoven/pkg/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestFetchClientsSendsCityWeekAndBearer(t *testing.T) {
	var gotAuth, gotCity, gotWeek string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/clients" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotCity = r.URL.Query().Get("city")
		gotWeek = r.URL.Query().Get("week_start")
		_ = json.NewEncoder(w).Encode([]model.ClientCard{{ID: "c1", Name: "Aruzhan"}})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticToken("tok-123")))
	cards, err := c.FetchClients(context.Background(), model.Astana, "2024-06-10")
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 1 || cards[0].ID != "c1" {
		t.Fatalf("cards = %+v", cards)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotCity != "astana" || gotWeek != "2024-06-10" {
		t.Fatalf("query = city %q week %q", gotCity, gotWeek)
	}
}

func TestUnauthorizedFiresHookOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	invalidated := 0
	c := New(srv.URL, WithUnauthorizedHook(func() { invalidated++ }))

	for i := 0; i < 3; i++ {
		_, err := c.FetchClients(context.Background(), model.Astana, "2024-06-10")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	}
	if invalidated != 1 {
		t.Fatalf("invalidation hook ran %d times, want 1", invalidated)
	}
}

func TestStatusErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid date format", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchClients(context.Background(), model.Astana, "bogus")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if se.Status != http.StatusBadRequest || se.Body != "invalid date format" {
		t.Fatalf("status error = %+v", se)
	}
}

func TestUpdateClientSendsPartialBody(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/clients/c1" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
	}))
	defer srv.Close()

	result := model.ResultBought
	c := New(srv.URL)
	if err := c.UpdateClient(context.Background(), "c1", model.ClientUpdate{Result: &result}); err != nil {
		t.Fatal(err)
	}
	if body["result"] != "bought" {
		t.Fatalf("body = %v", body)
	}
	if _, ok := body["name"]; ok {
		t.Fatal("unchanged name should be omitted")
	}

	// clearing the outcome must reach the server as an explicit null
	cleared := model.ResultNone
	if err := c.UpdateClient(context.Background(), "c1", model.ClientUpdate{Result: &cleared}); err != nil {
		t.Fatal(err)
	}
	v, ok := body["result"]
	if !ok || v != nil {
		t.Fatalf("cleared result = %v (present %v), want null", v, ok)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["password"] != "sekret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-9"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.Login(context.Background(), "sekret")
	if err != nil {
		t.Fatal(err)
	}
	if token != "tok-9" {
		t.Fatalf("token = %q", token)
	}
}
