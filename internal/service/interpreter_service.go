package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/radion-x/ODI-Aaron-3/internal/config"
	"github.com/radion-x/ODI-Aaron-3/internal/model"
)

// ResultSummary is the only assessment data forwarded to the narrative
// generation call: score totals and the derived severity, never raw
// responses.
type ResultSummary struct {
	TotalScore    int                 `json:"totalScore"`
	MaxScore      int                 `json:"maxScore"`
	SeverityLevel model.SeverityLevel `json:"severityLevel"`
}

// Summarize extracts the forwardable summary from a completed assessment
func Summarize(result model.AssessmentResult) ResultSummary {
	return ResultSummary{
		TotalScore:    result.TotalScore,
		MaxScore:      result.MaxScore,
		SeverityLevel: result.SeverityLevel,
	}
}

// InterpreterService produces a brief AI-generated observation about an
// assessment summary via the Anthropic messages API.
type InterpreterService struct {
	config *config.AIConfig
	client *http.Client
}

// NewInterpreterService creates a new interpreter service
func NewInterpreterService(cfg *config.AIConfig) *InterpreterService {
	return &InterpreterService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Interpret returns a neutral narrative observation for the given summary
func (s *InterpreterService) Interpret(ctx context.Context, summary ResultSummary) (string, error) {
	if !s.config.IsEnabled() {
		return s.mockInterpret(summary), nil
	}

	observation, err := s.callClaude(ctx, s.buildPrompt(summary))
	if err != nil {
		// Fallback to the canned observation on error
		return s.mockInterpret(summary), nil
	}
	return observation, nil
}

// callClaude makes a request to the Anthropic messages API
func (s *InterpreterService) callClaude(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":      s.config.Model,
		"max_tokens": s.config.MaxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.config.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude API returned status %d", resp.StatusCode)
	}

	var claudeResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return "", err
	}

	for _, block := range claudeResp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("empty response from Claude")
}

func (s *InterpreterService) buildPrompt(summary ResultSummary) string {
	return fmt.Sprintf(`
The following is a summary of a Modified Oswestry Disability Index for back pain:
- Total Score: %d
- Maximum Possible Score: %d
- Calculated Severity Level: %s

Based on this information, provide a brief, neutral observation about the reported impact on the individual's daily life. Focus on what the score and severity generally indicate in terms of functional limitation. Do not provide medical advice, recommendations, or prognoses. Do not suggest specific exercises or treatments. Keep the tone objective and observational.
`, summary.TotalScore, summary.MaxScore, summary.SeverityLevel)
}

// mockInterpret returns a canned per-severity observation when the API is
// not configured or unreachable.
func (s *InterpreterService) mockInterpret(summary ResultSummary) string {
	switch summary.SeverityLevel {
	case model.SeverityMinimal:
		return "The score suggests that back pain is causing a low level of disruption to daily activities."
	case model.SeverityModerate:
		return "The score suggests that back pain is causing a moderate level of disruption to daily activities."
	case model.SeveritySevere:
		return "The score suggests that back pain is having a significant impact on the individual's ability to perform daily activities."
	case model.SeverityCrippled:
		return "The score suggests that back pain is restricting most aspects of the individual's daily life."
	default:
		return fmt.Sprintf("The reported score of %d out of %d indicates a substantial level of functional limitation in daily activities.",
			summary.TotalScore, summary.MaxScore)
	}
}
