package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	config "github.com/anotoria/Zenith-AI/configs"
	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ContentGenerator returns ranked social-copy candidates for an article
// title. The list may be empty; callers decide what to do with that.
type ContentGenerator interface {
	Generate(ctx context.Context, title string) ([]models.Copy, error)
}

const generationSystemPrompt = "You are a social media copywriter. " +
	"Given a blog article title, write 3 short post variants in order of quality, best first. " +
	"One variant per line, no numbering, no quotes, include hashtags."

type generationService struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewGenerationService(cfg config.AI) ContentGenerator {
	return &generationService{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

func (s *generationService) Generate(ctx context.Context, title string) ([]models.Copy, error) {
	reqBody := transfer.ChatRequest{
		Model: s.model,
		Messages: []transfer.ChatMessage{
			{Role: "system", Content: generationSystemPrompt},
			{Role: "user", Content: title},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrGeneration, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %v", ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: %s: %s", ErrGeneration, resp.Status, strings.TrimSpace(string(body)))
	}

	var chatResp transfer.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrGeneration, err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, nil
	}

	return parseCopies(chatResp.Choices[0].Message.Content)
}

// parseCopies splits the completion into one candidate per non-blank line,
// keeping the model's ranking order.
func parseCopies(content string) ([]models.Copy, error) {
	var copies []models.Copy
	for _, line := range strings.Split(content, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		id, err := gonanoid.New()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
		}
		copies = append(copies, models.Copy{ID: id, Text: text})
	}
	return copies, nil
}
