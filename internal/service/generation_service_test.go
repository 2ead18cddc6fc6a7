package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anotoria/Zenith-AI/internal/transfer"
)

func newGenerationServer(t *testing.T, handler http.HandlerFunc) *generationService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &generationService{
		endpoint:   srv.URL,
		model:      "test-model",
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGenerateParsesOneCopyPerLine(t *testing.T) {
	t.Parallel()

	s := newGenerationServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}

		var req transfer.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("unexpected model %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[1].Content != "Some Title" {
			t.Errorf("unexpected messages %+v", req.Messages)
		}

		resp := transfer.ChatResponse{}
		resp.Choices = []transfer.ChatChoice{{
			Message: transfer.ChatMessage{
				Role:    "assistant",
				Content: "First variant #one\n\n  Second variant #two  \nThird variant",
			},
		}}
		json.NewEncoder(w).Encode(resp)
	})

	copies, err := s.Generate(context.Background(), "Some Title")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{"First variant #one", "Second variant #two", "Third variant"}
	if len(copies) != len(want) {
		t.Fatalf("expected %d copies, got %d", len(want), len(copies))
	}
	for i, text := range want {
		if copies[i].Text != text {
			t.Fatalf("copy %d: expected %q, got %q", i, text, copies[i].Text)
		}
		if copies[i].ID == "" {
			t.Fatalf("copy %d has no id", i)
		}
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	t.Parallel()

	s := newGenerationServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(transfer.ChatResponse{})
	})

	copies, err := s.Generate(context.Background(), "Some Title")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if copies != nil {
		t.Fatalf("expected no copies, got %+v", copies)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	t.Parallel()

	s := newGenerationServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := s.Generate(context.Background(), "Some Title")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}
