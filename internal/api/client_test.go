package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelbite/reelbite/internal/model"
)

func TestFetchFeedDecodesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/food" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"foodItems":[
			{"id":"r1","name":"Paneer Roll","video":"https://cdn.example/r1.mp4","likeCount":3,"savesCount":1,"foodPartner":"p9"},
			{"id":"r2","name":"Dosa","video":"https://cdn.example/r2.mp4","foodPartner":{"id":"p2","name":"Dosa Hub"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.FetchFeed(context.Background())
	if err != nil {
		t.Fatalf("FetchFeed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].LikeCount != 3 {
		t.Errorf("expected likeCount 3, got %d", items[0].LikeCount)
	}
	if items[1].Partner.DisplayName != "Dosa Hub" {
		t.Errorf("expected partner name from object form, got %q", items[1].Partner.DisplayName)
	}
}

func TestPostLikeSendsIDAndReturnsServerState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/food/like" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if in["foodId"] != "r1" {
			t.Errorf("expected foodId r1, got %q", in["foodId"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"like":true,"likeCount":12}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	liked, count, err := c.PostLike(context.Background(), "r1")
	if err != nil {
		t.Fatalf("PostLike: %v", err)
	}
	if !liked || count != 12 {
		t.Errorf("expected liked=true count=12, got %v %d", liked, count)
	}
}

func TestUnauthorizedStatusMapsToSentinel(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		c := NewClient(srv.URL)
		_, _, err := c.PostSave(context.Background(), "r1")
		srv.Close()
		if !errors.Is(err, model.ErrUnauthorized) {
			t.Errorf("status %d: expected ErrUnauthorized, got %v", status, err)
		}
	}
}

func TestServerErrorIsNotUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchFeed(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, model.ErrUnauthorized) {
		t.Error("500 must not map to ErrUnauthorized")
	}
}

func TestPostCommentReturnsConfirmedEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"comment":{"id":"c123","text":"great!","likeCount":0}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	comment, err := c.PostComment(context.Background(), "r1", "great!")
	if err != nil {
		t.Fatalf("PostComment: %v", err)
	}
	if comment.ID != "c123" || comment.Text != "great!" {
		t.Errorf("unexpected comment %+v", comment)
	}
}

func TestDeleteItemUsesDeleteVerb(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.DeleteItem(context.Background(), "r7"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/food/r7" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
}
