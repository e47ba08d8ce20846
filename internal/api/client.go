// Package api implements the HTTP transport behind the feed and comment
// collaborator interfaces. Caller identity travels implicitly in the session
// cookie; 401/403-equivalent responses surface as model.ErrUnauthorized so
// the mutation engine can tell an expired session apart from generic
// failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/reelbite/reelbite/internal/model"
)

// Request defaults
const (
	DefaultTimeout = 15 * time.Second
)

// Client talks to the reel feed backend.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the given API base URL. The cookie jar
// carries the session token across calls.
func NewClient(base string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: DefaultTimeout, Jar: jar},
	}
}

// NewClientWithHTTP creates a client over a caller-supplied http.Client.
func NewClientWithHTTP(base string, httpClient *http.Client) *Client {
	return &Client{base: strings.TrimRight(base, "/"), http: httpClient}
}

// FetchFeed returns the reel list. Errors surface as an error; callers treat
// them as an empty feed and do not retry.
func (c *Client) FetchFeed(ctx context.Context) ([]*model.ReelItem, error) {
	var out struct {
		FoodItems []*model.ReelItem `json:"foodItems"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/food", nil, &out); err != nil {
		return nil, err
	}
	return out.FoodItems, nil
}

// FetchOne returns a single reel by id.
func (c *Client) FetchOne(ctx context.Context, id string) (*model.ReelItem, error) {
	var out struct {
		FoodItem *model.ReelItem `json:"foodItem"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/food/"+id, nil, &out); err != nil {
		return nil, err
	}
	if out.FoodItem == nil {
		return nil, fmt.Errorf("item %s not in response", id)
	}
	return out.FoodItem, nil
}

// PostLike toggles the like for a reel and returns the server-confirmed
// state and counter.
func (c *Client) PostLike(ctx context.Context, id string) (liked bool, likeCount int, err error) {
	var out struct {
		Like      bool `json:"like"`
		LikeCount int  `json:"likeCount"`
	}
	in := map[string]string{"foodId": id}
	if err := c.do(ctx, http.MethodPost, "/api/food/like", in, &out); err != nil {
		return false, 0, err
	}
	return out.Like, out.LikeCount, nil
}

// PostSave toggles the save for a reel and returns the server-confirmed
// state and counter.
func (c *Client) PostSave(ctx context.Context, id string) (saved bool, savesCount int, err error) {
	var out struct {
		Save       bool `json:"save"`
		SavesCount int  `json:"savesCount"`
	}
	in := map[string]string{"foodId": id}
	if err := c.do(ctx, http.MethodPost, "/api/food/save", in, &out); err != nil {
		return false, 0, err
	}
	return out.Save, out.SavesCount, nil
}

// FetchComments returns the comment thread for a reel.
func (c *Client) FetchComments(ctx context.Context, itemID string) ([]*model.Comment, error) {
	var out struct {
		Comments []*model.Comment `json:"comments"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/food/"+itemID+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// PostComment submits a comment and returns the server's confirmed entry.
func (c *Client) PostComment(ctx context.Context, itemID, text string) (*model.Comment, error) {
	var out struct {
		Comment *model.Comment `json:"comment"`
	}
	in := map[string]string{"foodId": itemID, "text": text}
	if err := c.do(ctx, http.MethodPost, "/api/food/comment", in, &out); err != nil {
		return nil, err
	}
	if out.Comment == nil {
		return nil, fmt.Errorf("comment missing from response")
	}
	return out.Comment, nil
}

// PostCommentLike toggles the like on one comment.
func (c *Client) PostCommentLike(ctx context.Context, commentID string) error {
	in := map[string]string{"commentId": commentID}
	return c.do(ctx, http.MethodPost, "/api/food/comment/like", in, nil)
}

// DeleteItem removes a reel owned by the calling partner.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/food/"+id, nil, nil)
}

// do runs one JSON round trip and maps the response status to the failure
// taxonomy.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, model.ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
