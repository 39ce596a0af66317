package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBatch(t *testing.T) {
	var got batchSubmitBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/translator/text/batch/v1.0/batches", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Operation-Location",
			"https://api.example.com/translator/text/batch/v1.0/batches/3a6b1f7c")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewBatchClient(srv.URL, "key", "region")
	jobID, err := c.SubmitBatch(context.Background(), BatchRequest{
		Source: BatchSource{URL: "https://src", Filter: "100_report.docx"},
		Targets: []BatchTarget{
			{URL: "https://dst", Language: "de"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "3a6b1f7c", jobID)
	require.Len(t, got.Inputs, 1)
	assert.Equal(t, "https://src", got.Inputs[0].Source.SourceURL)
	require.NotNil(t, got.Inputs[0].Source.Filter)
	assert.Equal(t, "100_report.docx", got.Inputs[0].Source.Filter.Prefix)
	require.Len(t, got.Inputs[0].Targets, 1)
	assert.Equal(t, "de", got.Inputs[0].Targets[0].Language)
}

func TestSubmitBatch_MissingOperationLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewBatchClient(srv.URL, "key", "region")
	_, err := c.SubmitBatch(context.Background(), BatchRequest{
		Source:  BatchSource{URL: "https://src"},
		Targets: []BatchTarget{{URL: "https://dst", Language: "de"}},
	})

	assert.ErrorIs(t, err, ErrTranslationService)
}

func TestGetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translator/text/batch/v1.0/batches/job-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "job-1",
			"status":  BatchRunning,
			"summary": map[string]int{"total": 4, "failed": 0, "success": 1},
		})
	}))
	defer srv.Close()

	c := NewBatchClient(srv.URL, "key", "region")
	st, err := c.GetStatus(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, BatchRunning, st.Status)
	assert.Equal(t, 1, st.DocumentsSucceeded)
	assert.Equal(t, 4, st.DocumentsTotal)
	assert.Empty(t, st.Error)
}

func TestGetStatus_FailedJobCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": BatchFailed,
			"error":  map[string]string{"code": "InvalidRequest", "message": "target container unreachable"},
		})
	}))
	defer srv.Close()

	c := NewBatchClient(srv.URL, "key", "region")
	st, err := c.GetStatus(context.Background(), "job-2")

	require.NoError(t, err)
	assert.Equal(t, BatchFailed, st.Status)
	assert.Equal(t, "target container unreachable", st.Error)
}
