// Package client talks to the gallery REST API the way the browser frontend does: it fetches
// the visible listing once and filters it locally.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	artworkDto "galerij/internal/domains/artwork/model/dto"
	commentDto "galerij/internal/domains/comment/model/dto"
	"galerij/transport/http/response"
)

const (
	defaultTimeout = 10 * time.Second

	anonymous = "Anonymous"
)

var ErrNotFound = errors.New("artwork not found")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) ListArtworks(ctx context.Context) ([]artworkDto.ArtworkListItem, error) {
	var list []artworkDto.ArtworkListItem
	if err := c.get(ctx, "/api/artworks", &list); err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}

	return list, nil
}

func (c *Client) GetArtwork(ctx context.Context, id int64) (artworkDto.ArtworkDetailResponse, error) {
	var detail artworkDto.ArtworkDetailResponse
	if err := c.get(ctx, "/api/artworks/"+strconv.FormatInt(id, 10), &detail); err != nil {
		return artworkDto.ArtworkDetailResponse{}, fmt.Errorf("failed to get artwork %d: %w", id, err)
	}

	return detail, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode >= http.StatusBadRequest:
		var body response.Error
		if decodeErr := json.NewDecoder(res.Body).Decode(&body); decodeErr == nil && body.Error != nil {
			return fmt.Errorf("server responded %d: %s", res.StatusCode, *body.Error)
		}

		return fmt.Errorf("server responded %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// Filter keeps the artworks whose title or artist name contains term, ignoring case. An empty
// term keeps everything.
func Filter(list []artworkDto.ArtworkListItem, term string) []artworkDto.ArtworkListItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	filtered := make([]artworkDto.ArtworkListItem, 0, len(list))

	for _, item := range list {
		if strings.Contains(strings.ToLower(item.Title), term) ||
			(item.ArtistName != nil && strings.Contains(strings.ToLower(*item.ArtistName), term)) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func DisplayName(comment commentDto.CommentResponse) string {
	if comment.UserName != nil && *comment.UserName != "" {
		return *comment.UserName
	}

	if comment.AuthorName != nil && *comment.AuthorName != "" {
		return *comment.AuthorName
	}

	return anonymous
}
