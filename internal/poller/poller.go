// Package poller is the client-side counterpart of the job coordinator: it
// watches a translation job over the HTTP status endpoint until the job
// reaches a terminal state or the polling window closes.
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrPollTimeout means the polling window closed before the job reached a
// terminal state. The job itself is not failed; it may still complete
// later — the watcher simply stops watching.
var ErrPollTimeout = errors.New("translation polling timed out")

const (
	// DefaultInterval between status checks.
	DefaultInterval = 3 * time.Second
	// DefaultMaxAttempts bounds the watch to roughly three minutes.
	DefaultMaxAttempts = 60
)

// JobStatus is the server's polling response.
type JobStatus struct {
	Status             string `json:"status"`
	Progress           int    `json:"progress"`
	TranslatedFileName string `json:"translatedFileName"`
	Error              string `json:"error"`
}

// Notifier receives user-facing progress notifications. May be nil.
type Notifier interface {
	Notify(message string)
}

type Client struct {
	baseURL     string
	interval    time.Duration
	maxAttempts int
	notifier    Notifier
	http        *resty.Client
}

type Option func(*Client)

func WithInterval(d time.Duration) Option { return func(c *Client) { c.interval = d } }
func WithMaxAttempts(n int) Option        { return func(c *Client) { c.maxAttempts = n } }
func WithNotifier(n Notifier) Option      { return func(c *Client) { c.notifier = n } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     baseURL,
		interval:    DefaultInterval,
		maxAttempts: DefaultMaxAttempts,
		http:        resty.New().SetTimeout(10 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Watch polls the job once immediately, then at the configured interval,
// until a terminal status arrives or the attempt limit is reached.
func (c *Client) Watch(ctx context.Context, jobID string) (*JobStatus, error) {
	attempts := 0
	check := func() (*JobStatus, bool, error) {
		attempts++
		var status JobStatus
		resp, err := c.http.R().SetContext(ctx).
			SetResult(&status).
			Get(fmt.Sprintf("%s/translationStatus/%s", c.baseURL, jobID))
		if err != nil {
			return nil, true, err
		}
		if resp.IsError() {
			return nil, true, fmt.Errorf("status check failed: %s", resp.Status())
		}

		switch status.Status {
		case "completed":
			c.notify("Translation completed")
			return &status, true, nil
		case "failed":
			c.notify("Translation failed")
			return &status, true, nil
		}
		return &status, false, nil
	}

	if status, done, err := check(); done {
		return status, err
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			status, done, err := check()
			if done {
				return status, err
			}
			if attempts >= c.maxAttempts {
				c.notify("Translation is taking too long; check the history later")
				return status, ErrPollTimeout
			}
		}
	}
}

func (c *Client) notify(message string) {
	if c.notifier != nil {
		c.notifier.Notify(message)
	}
}
