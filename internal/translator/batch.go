package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Batch job statuses as reported by the external batch document
// translation API.
const (
	BatchNotStarted       = "NotStarted"
	BatchRunning          = "Running"
	BatchSucceeded        = "Succeeded"
	BatchFailed           = "Failed"
	BatchValidationFailed = "ValidationFailed"
	BatchCancelling       = "Cancelling"
)

// BatchRequest describes one batch translation submission. The API is
// container oriented: it reads every document behind the source URL that
// matches the filter and writes translated documents behind each target URL.
type BatchRequest struct {
	Source  BatchSource   `json:"source"`
	Targets []BatchTarget `json:"targets"`
}

type BatchSource struct {
	URL    string `json:"sourceUrl"`
	Filter string `json:"filter,omitempty"`
}

type BatchTarget struct {
	URL      string `json:"targetUrl"`
	Language string `json:"language"`
}

// BatchStatus is the reconciled view of one batch job.
type BatchStatus struct {
	Status             string
	DocumentsSucceeded int
	DocumentsTotal     int
	Error              string
}

// BatchClient talks to the asynchronous batch document translation
// endpoint.
type BatchClient struct {
	endpoint string
	key      string
	region   string
	http     *resty.Client
}

func NewBatchClient(endpoint, key, region string) *BatchClient {
	return &BatchClient{
		endpoint: endpoint,
		key:      key,
		region:   region,
		http:     resty.New().SetTimeout(30 * time.Second),
	}
}

type batchSubmitBody struct {
	Inputs []batchInput `json:"inputs"`
}

type batchInput struct {
	Source  batchSourceBody   `json:"source"`
	Targets []batchTargetBody `json:"targets"`
}

type batchSourceBody struct {
	SourceURL string       `json:"sourceUrl"`
	Filter    *batchFilter `json:"filter,omitempty"`
}

type batchFilter struct {
	Prefix string `json:"prefix"`
}

type batchTargetBody struct {
	TargetURL string `json:"targetUrl"`
	Language  string `json:"language"`
}

// SubmitBatch submits a batch translation job and returns the opaque job
// identifier extracted from the Operation-Location response header.
func (c *BatchClient) SubmitBatch(ctx context.Context, req BatchRequest) (string, error) {
	body := batchSubmitBody{Inputs: []batchInput{{
		Source: batchSourceBody{SourceURL: req.Source.URL},
	}}}
	if req.Source.Filter != "" {
		body.Inputs[0].Source.Filter = &batchFilter{Prefix: req.Source.Filter}
	}
	for _, t := range req.Targets {
		body.Inputs[0].Targets = append(body.Inputs[0].Targets, batchTargetBody{
			TargetURL: t.URL,
			Language:  t.Language,
		})
	}

	resp, err := c.http.R().SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", c.key).
		SetHeader("Ocp-Apim-Subscription-Region", c.region).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.endpoint + "/translator/text/batch/v1.0/batches")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationService, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: %s; body: %s", ErrTranslationService, resp.Status(), resp.String())
	}

	opLocation := resp.Header().Get("Operation-Location")
	if opLocation == "" {
		return "", fmt.Errorf("%w: missing Operation-Location header", ErrTranslationService)
	}
	parts := strings.Split(strings.TrimRight(opLocation, "/"), "/")
	return parts[len(parts)-1], nil
}

type batchStatusBody struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Summary struct {
		Total   int `json:"total"`
		Failed  int `json:"failed"`
		Success int `json:"success"`
	} `json:"summary"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GetStatus fetches the current status of a previously submitted job.
func (c *BatchClient) GetStatus(ctx context.Context, jobID string) (*BatchStatus, error) {
	var body batchStatusBody
	resp, err := c.http.R().SetContext(ctx).
		SetHeader("Ocp-Apim-Subscription-Key", c.key).
		SetHeader("Ocp-Apim-Subscription-Region", c.region).
		SetResult(&body).
		Get(c.endpoint + "/translator/text/batch/v1.0/batches/" + jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranslationService, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s; body: %s", ErrTranslationService, resp.Status(), resp.String())
	}

	return &BatchStatus{
		Status:             body.Status,
		DocumentsSucceeded: body.Summary.Success,
		DocumentsTotal:     body.Summary.Total,
		Error:              body.Error.Message,
	}, nil
}
