package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// ErrAnalysisFailed covers transport errors, non-success statuses and
// undecodable report payloads from the outcome-analysis service.
var ErrAnalysisFailed = errors.New("analysis failed")

// Client uploads an existing FIR PDF to the remote legal-outcome
// analysis service and decodes the report.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 2 * time.Minute},
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.endpoint != ""
}

// Analyze sends the PDF as multipart/form-data under the "file" field
// and returns the decoded report.
func (c *Client) Analyze(ctx context.Context, filename string, file io.Reader) (*Report, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: no analysis endpoint configured", ErrAnalysisFailed)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	log.Info("uploading FIR for outcome analysis", "file", filename)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: service returned %s", ErrAnalysisFailed, resp.Status)
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	log.Info("outcome analysis received",
		"win_probability", report.LegalAnalysis.WinProbabilityPercent,
		"recommended_action", report.LegalAnalysis.RecommendedAction)
	return &report, nil
}
