// Package client calls the prediction API and serves the form front end.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"heartrisk/clinical"
	"heartrisk/ml"
)

// APIError reports a non-2xx answer from the prediction service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("prediction service returned %d: %s", e.Status, e.Message)
}

// Client issues one synchronous POST per form submission. No retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// New builds a client for the given API base URL, e.g. http://127.0.0.1:8000.
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger,
	}
}

// Predict posts the raw observation and decodes the verdict.
func (c *Client) Predict(ctx context.Context, obs clinical.Observation) (ml.Result, error) {
	payload, err := json.Marshal(obs)
	if err != nil {
		return ml.Result{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return ml.Result{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("prediction request failed", zap.Error(err))
		return ml.Result{}, fmt.Errorf("calling prediction service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ml.Result{}, c.decodeError(resp)
	}

	var res ml.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return ml.Result{}, fmt.Errorf("decoding response: %w", err)
	}
	return res, nil
}

func (c *Client) decodeError(resp *http.Response) error {
	var body struct {
		Message string                `json:"message"`
		Detail  []clinical.FieldError `json:"detail"`
	}
	apiErr := &APIError{Status: resp.StatusCode, Message: "no details available"}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return apiErr
	}
	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case len(body.Detail) > 0:
		parts := make([]string, 0, len(body.Detail))
		for _, fe := range body.Detail {
			parts = append(parts, fe.String())
		}
		apiErr.Message = strings.Join(parts, "; ")
	}
	return apiErr
}
