package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// apiEnvelope is the server's uniform response shape.
type apiEnvelope[T any] struct {
	Results []T    `json:"results"`
	When    string `json:"when"`
	Error   string `json:"error,omitempty"`
}

type apiVideo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	FilePath   string `json:"filePath"`
	Duration   *int64 `json:"duration,omitempty"`
	Size       *int64 `json:"size,omitempty"`
	Attributes struct {
		Exists  bool `json:"exists"`
		Watched bool `json:"watched"`
	} `json:"attributes"`
	CustomURL string `json:"customUrl,omitempty"`
}

func (v apiVideo) record() VideoRecord {
	rec := VideoRecord{
		ID:            v.ID,
		Title:         v.Title,
		FilePath:      v.FilePath,
		DurationNanos: -1,
		SizeBytes:     -1,
		Watched:       v.Attributes.Watched,
		Exists:        v.Attributes.Exists,
		SourceURL:     v.CustomURL,
	}
	if v.Duration != nil {
		rec.DurationNanos = *v.Duration
	}
	if v.Size != nil {
		rec.SizeBytes = *v.Size
	}
	return rec
}

type videosLoadedMsg struct {
	generation int
	records    []VideoRecord
	when       string
	err        error
}

type pagesLoadedMsg struct {
	pages []pageLink
	err   error
}

type reloadFinishedMsg struct {
	err error
}

// catalogClient talks to the video server. In-flight fetches are never
// cancelled; instead every fetch carries a generation number and the
// model discards responses from superseded generations, so a slow stale
// response can never clobber a newer one.
type catalogClient struct {
	baseURL    string
	http       *http.Client
	generation int
}

func newCatalogClient(baseURL string) *catalogClient {
	return &catalogClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// StreamURL selects where the player reads from: the caller-supplied
// override when present, the server stream endpoint otherwise.
func (c *catalogClient) StreamURL(rec *VideoRecord) string {
	if rec == nil {
		return ""
	}
	if rec.SourceURL != "" {
		return rec.SourceURL
	}
	return c.baseURL + "/video/stream/" + rec.ID
}

// FetchVideos starts a catalog fetch under a fresh generation.
func (c *catalogClient) FetchVideos() tea.Cmd {
	c.generation++
	generation := c.generation
	baseURL := c.baseURL
	client := c.http
	return func() tea.Msg {
		envelope, err := getEnvelope[apiVideo](client, baseURL+"/api/v1/videos")
		if err != nil {
			return videosLoadedMsg{generation: generation, err: err}
		}
		records := make([]VideoRecord, 0, len(envelope.Results))
		for _, v := range envelope.Results {
			records = append(records, v.record())
		}
		return videosLoadedMsg{generation: generation, records: records, when: envelope.When}
	}
}

// CurrentGeneration is the newest generation handed out; older responses
// are stale.
func (c *catalogClient) CurrentGeneration() int { return c.generation }

func (c *catalogClient) FetchPages() tea.Cmd {
	baseURL := c.baseURL
	client := c.http
	return func() tea.Msg {
		envelope, err := getEnvelope[pageLink](client, baseURL+"/api/v1/pages")
		if err != nil {
			return pagesLoadedMsg{err: err}
		}
		return pagesLoadedMsg{pages: envelope.Results}
	}
}

// Reload asks the server to rescan its library. The caller refetches the
// catalog when this settles; on failure it only logs.
func (c *catalogClient) Reload() tea.Cmd {
	baseURL := c.baseURL
	client := c.http
	return func() tea.Msg {
		resp, err := client.Get(baseURL + "/api/v1/reload-data")
		if err != nil {
			return reloadFinishedMsg{err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return reloadFinishedMsg{err: fmt.Errorf("reload-data: unexpected status %s", resp.Status)}
		}
		return reloadFinishedMsg{}
	}
}

func getEnvelope[T any](client *http.Client, url string) (*apiEnvelope[T], error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	var envelope apiEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	if envelope.Error != "" {
		return nil, fmt.Errorf("server error from %s: %s", url, envelope.Error)
	}
	return &envelope, nil
}
