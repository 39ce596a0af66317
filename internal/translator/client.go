// Package translator wraps the external translation API: synchronous text
// translation (with chunking for long inputs) and asynchronous batch
// document translation.
package translator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrTranslationService wraps any failure of the external translation API.
var ErrTranslationService = errors.New("translation service error")

// DefaultChunkSize is the largest text sent in a single translate call.
// The API rejects requests well above this; chunking keeps each call safe.
const DefaultChunkSize = 5000

// Result of a single synchronous translation call.
type Result struct {
	TranslatedText   string
	DetectedLanguage string
	Confidence       float64
}

// Client talks to the v3 text translation endpoint.
type Client struct {
	endpoint string
	key      string
	region   string
	http     *resty.Client
}

func New(endpoint, key, region string) *Client {
	return &Client{
		endpoint: endpoint,
		key:      key,
		region:   region,
		http:     resty.New().SetTimeout(30 * time.Second),
	}
}

type translateItem struct {
	DetectedLanguage *struct {
		Language string  `json:"language"`
		Score    float64 `json:"score"`
	} `json:"detectedLanguage"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Translate performs one synchronous text translation. sourceLanguage may
// be empty for auto-detection.
func (c *Client) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (*Result, error) {
	var items []translateItem
	req := c.http.R().SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", c.key).
		SetHeader("Ocp-Apim-Subscription-Region", c.region).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("api-version", "3.0").
		SetQueryParam("to", targetLanguage).
		SetBody([]map[string]string{{"text": text}}).
		SetResult(&items)
	if sourceLanguage != "" {
		req.SetQueryParam("from", sourceLanguage)
	}

	resp, err := req.Post(c.endpoint + "/translate")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranslationService, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s; body: %s", ErrTranslationService, resp.Status(), resp.String())
	}
	if len(items) == 0 || len(items[0].Translations) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrTranslationService)
	}

	out := &Result{TranslatedText: items[0].Translations[0].Text}
	if d := items[0].DetectedLanguage; d != nil {
		out.DetectedLanguage = d.Language
		out.Confidence = d.Score
	}
	return out, nil
}

// TranslateLong translates text of any length by splitting it into
// contiguous chunks of exactly chunkSize runes (the final chunk may be
// shorter), translating each in sequence and concatenating the results
// with no separator. Chunk boundaries may split mid-word; that is an
// accepted tradeoff of the chunking policy. Any chunk failure aborts the
// whole operation with no partial result.
func (c *Client) TranslateLong(ctx context.Context, text, targetLanguage string, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		res, err := c.Translate(ctx, text, "", targetLanguage)
		if err != nil {
			return "", err
		}
		return res.TranslatedText, nil
	}

	var out string
	for i := 0; i < len(runes); i += chunkSize {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		res, err := c.Translate(ctx, string(runes[i:end]), "", targetLanguage)
		if err != nil {
			return "", err
		}
		out += res.TranslatedText
	}
	return out, nil
}
