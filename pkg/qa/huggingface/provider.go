// Package huggingface implements the qa.Extractor interface on the
// Hugging Face inference API question answering pipeline.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kart-io/doc-center/pkg/qa"

	qaopts "github.com/kart-io/doc-center/pkg/options/qa"
	"github.com/kart-io/doc-center/pkg/utils/httpclient"
)

// Provider answers questions via the Hugging Face inference API.
type Provider struct {
	opts   *qaopts.Options
	client *httpclient.Client
}

var _ qa.Extractor = (*Provider)(nil)

// New creates a provider from the given options.
func New(opts *qaopts.Options) (*Provider, error) {
	if opts == nil {
		return nil, fmt.Errorf("qa options cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid qa options: %w", err)
	}

	return &Provider{
		opts:   opts,
		client: httpclient.NewClient(opts.Timeout, opts.MaxRetries),
	}, nil
}

// questionAnsweringRequest is the QA pipeline request payload.
type questionAnsweringRequest struct {
	Inputs questionAnsweringInputs `json:"inputs"`
}

type questionAnsweringInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// questionAnsweringResponse is the QA pipeline response payload.
type questionAnsweringResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

// Answer sends the question and passage to the QA model and returns
// the extracted answer span.
func (p *Provider) Answer(ctx context.Context, question, passage string) (string, error) {
	payload, err := json.Marshal(questionAnsweringRequest{
		Inputs: questionAnsweringInputs{
			Question: question,
			Context:  passage,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal qa request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", strings.TrimRight(p.opts.BaseURL, "/"), p.opts.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build qa request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.opts.Token)
	}

	var out questionAnsweringResponse
	if err := p.client.DoJSON(req, &out); err != nil {
		return "", fmt.Errorf("qa inference failed: %w", err)
	}

	return strings.TrimSpace(out.Answer), nil
}
