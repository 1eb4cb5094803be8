// Dictionary API implementation of [API]
//
// Response shapes follow the dictionary backend's REST contract.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ewhitmore/glossa/internal/models"
	"github.com/ewhitmore/glossa/internal/shared"
)

const defaultBaseURL = "http://localhost:3030"

// entryFields is the nested fields object in word list results.
type entryFields struct {
	Word string `json:"word"`
	ID   string `json:"_id"`
}

type entriesResult struct {
	Fields entryFields `json:"fields"`
}

// entriesResponse is the wire shape of GET /dictionary/entries/{lang}.
type entriesResponse struct {
	Results []entriesResult `json:"results"`
	models.PageMeta
}

// detailResponse is the wire shape of GET /dictionary/entries/{lang}/{word}.
type detailResponse struct {
	Results []models.WordDetail `json:"results"`
}

// favoritesResponse is the wire shape of GET /user/me/favorites.
type favoritesResponse struct {
	Results []models.FavoriteEntry `json:"results"`
	models.PageMeta
}

// historyResponse is the wire shape of GET /user/me/history.
type historyResponse struct {
	Results []models.HistoryEntry `json:"results"`
	models.PageMeta
}

// signinResponse is the wire shape of POST /auth/signin.
type signinResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// wordBody is the request body for favorite/unfavorite mutations.
type wordBody struct {
	Word string `json:"word"`
}

// Client implements [API] over the dictionary REST backend.
//
// The bearer token is injected at construction (or via [Client.WithToken])
// rather than read from ambient state, so every instance's auth is explicit.
type Client struct {
	baseURL    string
	language   string
	token      string
	httpClient *http.Client
}

// NewClient creates a dictionary API client. token may be empty for
// unauthenticated use (signin, public entry listing). A nil httpClient
// falls back to [http.DefaultClient].
func NewClient(baseURL, language, token string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if language == "" {
		language = "en"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		language:   language,
		token:      token,
		httpClient: httpClient,
	}
}

// WithToken returns a copy of the client authenticated with token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// doRequest performs an HTTP request against the backend, attaching the
// bearer token when present, and decodes a JSON response into result.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	apiURL := c.baseURL + endpoint

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", shared.ErrNotAuthenticated, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", shared.ErrWordNotFound, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Entries retrieves one page of the word list.
func (c *Client) Entries(ctx context.Context, page, limit int) ([]models.WordSummary, models.PageMeta, error) {
	if limit <= 0 {
		limit = 5
	}
	if page <= 0 {
		page = 1
	}

	endpoint := fmt.Sprintf("/dictionary/entries/%s?limit=%d&page=%d", c.language, limit, page)

	var response entriesResponse
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, models.PageMeta{}, err
	}

	words := make([]models.WordSummary, 0, len(response.Results))
	for _, result := range response.Results {
		words = append(words, models.WordSummary{Word: result.Fields.Word})
	}

	return words, response.PageMeta, nil
}

// Entry retrieves the full dictionary entry for a word.
func (c *Client) Entry(ctx context.Context, word string) (*models.WordDetail, error) {
	word = shared.NormalizeWord(word)
	if word == "" {
		return nil, fmt.Errorf("%w: empty word", shared.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("/dictionary/entries/%s/%s", c.language, url.PathEscape(word))

	var response detailResponse
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	if len(response.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrWordNotFound, word)
	}

	return &response.Results[0], nil
}

// Favorites retrieves one page of the user's favorited words.
func (c *Client) Favorites(ctx context.Context, page, limit int) ([]models.FavoriteEntry, models.PageMeta, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	endpoint := fmt.Sprintf("/user/me/favorites?page=%d&limit=%d", page, limit)

	var response favoritesResponse
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, models.PageMeta{}, err
	}

	return response.Results, response.PageMeta, nil
}

// Favorite marks a word as a favorite.
func (c *Client) Favorite(ctx context.Context, word string) error {
	return c.toggleFavorite(ctx, word, "favorite")
}

// Unfavorite removes a word from the user's favorites.
func (c *Client) Unfavorite(ctx context.Context, word string) error {
	return c.toggleFavorite(ctx, word, "unfavorite")
}

func (c *Client) toggleFavorite(ctx context.Context, word, action string) error {
	word = shared.NormalizeWord(word)
	if word == "" {
		return fmt.Errorf("%w: empty word", shared.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("/dictionary/entries/%s/%s/%s", c.language, url.PathEscape(word), action)
	return c.doRequest(ctx, http.MethodPatch, endpoint, wordBody{Word: word}, nil)
}

// History retrieves one page of the user's lookup history.
func (c *Client) History(ctx context.Context, page, limit int) ([]models.HistoryEntry, models.PageMeta, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	endpoint := fmt.Sprintf("/user/me/history?page=%d&limit=%d", page, limit)

	var response historyResponse
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, models.PageMeta{}, err
	}

	return response.Results, response.PageMeta, nil
}

// SignIn exchanges credentials for a bearer token and user profile.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", shared.ErrInvalidInput)
	}

	body := map[string]string{"email": email, "password": password}

	var response signinResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/signin", body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if response.Token == "" {
		return nil, fmt.Errorf("%w: empty token in response", shared.ErrAuthFailed)
	}

	now := time.Now().UTC()
	return &models.Session{
		Token:     response.Token,
		UserID:    response.User.ID,
		Email:     response.User.Email,
		Name:      response.User.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
