package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"
)

// FallbackAdvice is returned whenever the advice provider cannot produce a
// real answer. Callers always get a non-empty string, never an error.
const FallbackAdvice = "Drinking water boosts your energy and brain function."

const defaultAdviceModel = "gemini-3-flash-preview"

type AdviceService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewAdviceService(apiKey string) *AdviceService {
	return &AdviceService{
		apiKey:  apiKey,
		model:   defaultAdviceModel,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
		now: time.Now,
	}
}

type adviceGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type advicePart struct {
	Text string `json:"text"`
}

type adviceContent struct {
	Parts []advicePart `json:"parts"`
}

type adviceRequest struct {
	Contents         []adviceContent        `json:"contents"`
	GenerationConfig adviceGenerationConfig `json:"generationConfig"`
}

type adviceResponse struct {
	Candidates []struct {
		Content adviceContent `json:"content"`
	} `json:"candidates"`
}

// GetAdvice asks the model for one short hydration tip. Any failure, from
// a missing key to a bad status, degrades to the canned fallback.
func (service *AdviceService) GetAdvice(ctx context.Context, currentAmount int, dailyGoal int) string {
	if service.apiKey == "" || dailyGoal <= 0 {
		return FallbackAdvice
	}

	advice, err := service.requestAdvice(ctx, currentAmount, dailyGoal)
	if err != nil {
		log.Printf("advice: falling back: %v", err)
		return FallbackAdvice
	}
	return advice
}

func (service *AdviceService) requestAdvice(ctx context.Context, currentAmount int, dailyGoal int) (string, error) {
	payload := adviceRequest{
		Contents: []adviceContent{
			{Parts: []advicePart{{Text: service.buildPrompt(currentAmount, dailyGoal)}}},
		},
		GenerationConfig: adviceGenerationConfig{
			MaxOutputTokens: 100,
			Temperature:     0.7,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", service.baseURL, service.model, service.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := service.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("advice status %d: %s", resp.StatusCode, string(snippet))
	}

	parsed := adviceResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("empty advice response")
}

func (service *AdviceService) buildPrompt(currentAmount int, dailyGoal int) string {
	percentage := int(math.Round(float64(currentAmount) / float64(dailyGoal) * 100))

	timeOfDay := "daytime"
	switch hour := service.now().Hour(); {
	case hour < 6:
		timeOfDay = "late night"
	case hour < 12:
		timeOfDay = "morning"
	case hour < 18:
		timeOfDay = "afternoon"
	default:
		timeOfDay = "evening"
	}

	return fmt.Sprintf(
		"You are a friendly hydration coach. The user has drunk %dml of a %dml daily goal (%d%%). It is currently %s. "+
			"Reply with one short, warm, science-based sip of advice, at most 20 words. "+
			"In the morning suggest waking the body up, in the afternoon refueling, late at night drinking less, "+
			"and encourage the user when the goal is close.",
		currentAmount, dailyGoal, percentage, timeOfDay,
	)
}
