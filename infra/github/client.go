// Package github pushes exported artifacts to a repository through the
// GitHub contents API. It is a boundary collaborator: the engine never
// calls it, the application layer does after a run completes.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/acadkit/cohort/core/logger"
)

const defaultBaseURL = "https://api.github.com"

// Client uploads files to a single repository branch.
type Client struct {
	owner   string
	repo    string
	branch  string
	token   string
	baseURL string
	client  *http.Client
	log     logger.Logger
}

// Config identifies the target repository.
type Config struct {
	Token  string `json:"token"`
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}

// New creates a push client. An empty branch defaults to main.
func New(cfg Config, log logger.Logger) *Client {
	branch := cfg.Branch
	if branch == "" {
		branch = "main"
	}
	return &Client{
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		branch:  branch,
		token:   cfg.Token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type contentsPayload struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// PutFile creates or updates a file at path in the repository. An existing
// file is looked up first so its blob SHA can be supplied on update.
func (c *Client) PutFile(ctx context.Context, path string, data []byte) error {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, path)

	payload := contentsPayload{
		Message: "Add " + path,
		Content: base64.StdEncoding.EncodeToString(data),
		Branch:  c.branch,
	}
	if sha, err := c.existingSHA(ctx, url); err != nil {
		return err
	} else if sha != "" {
		payload.SHA = sha
		payload.Message = "Update " + path
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("put %s: unexpected status %s", path, resp.Status)
	}
	c.log.Debugw("file pushed", map[string]any{"path": path, "status": resp.StatusCode})
	return nil
}

func (c *Client) existingSHA(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"?ref="+c.branch, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lookup: unexpected status %s", resp.Status)
	}
	var out struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("lookup: decode: %w", err)
	}
	return out.SHA, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}
