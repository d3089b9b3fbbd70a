package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"food-analyzer-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

// UnknownFood is reported as the identified name whenever analysis fails.
const UnknownFood = "Unknown"

const (
	defaultImageMIME = "image/jpeg"
	upstreamExcerpt  = 150
	rawExcerpt       = 100
)

// ErrEmptyResponse is returned when the model produced no text part.
var ErrEmptyResponse = errors.New("inference response was empty; the model might have been blocked or failed to generate JSON")

// UpstreamError is a non-success status from the inference service.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("inference request failed with status %d: %s", e.StatusCode, e.Body)
}

// ParseError is returned when the model text is not a valid analysis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse inference response: %v; raw: %s", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ContentGenerator is the hosted generative model
type ContentGenerator interface {
	GenerateContent(ctx context.Context, system *genai.Content, schema *genai.Schema, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// AnalyzerService asks the generative model for a structured food analysis
type AnalyzerService struct {
	generator ContentGenerator
	timeout   time.Duration
	validate  *validator.Validate
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(generator ContentGenerator, timeout time.Duration) *AnalyzerService {
	return &AnalyzerService{
		generator: generator,
		timeout:   timeout,
		validate:  validator.New(),
	}
}

// Analyze sends the image and the declared name and weight to the model and
// parses its answer. On failure the identified name is UnknownFood.
func (s *AnalyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.FoodAnalysis, string, error) {
	data, err := os.ReadFile(req.ImagePath)
	if err != nil {
		return nil, UnknownFood, fmt.Errorf("service: failed to read image: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.generator.GenerateContent(ctx,
		systemInstruction(req.FoodName, req.FoodWeight),
		analysisSchema,
		genai.Text(userPrompt(req.FoodName, req.FoodWeight)),
		genai.Blob{MIMEType: imageMIMEType(req.ImagePath), Data: data},
	)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			body := apiErr.Body
			if body == "" {
				body = apiErr.Message
			}
			return nil, UnknownFood, &UpstreamError{StatusCode: apiErr.Code, Body: excerpt(body, upstreamExcerpt)}
		}
		return nil, UnknownFood, fmt.Errorf("inference request failed: %w", err)
	}

	text := firstText(resp)
	if strings.TrimSpace(text) == "" {
		return nil, UnknownFood, ErrEmptyResponse
	}

	analysis, err := s.parse(text)
	if err != nil {
		return nil, UnknownFood, err
	}

	return analysis, analysis.FoodNameIdentified, nil
}

func (s *AnalyzerService) parse(text string) (*models.FoodAnalysis, error) {
	var analysis models.FoodAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, &ParseError{Raw: excerpt(text, rawExcerpt), Err: err}
	}
	if err := s.validate.Struct(&analysis); err != nil {
		return nil, &ParseError{Raw: excerpt(text, rawExcerpt), Err: err}
	}
	return &analysis, nil
}

// imageMIMEType guesses the image type from the file extension and falls
// back to JPEG for anything that is not an image type.
func imageMIMEType(path string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if t, _, err := mime.ParseMediaType(t); err == nil && strings.HasPrefix(t, "image/") {
		return t
	}
	return defaultImageMIME
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 {
		return ""
	}
	if t, ok := c.Content.Parts[0].(genai.Text); ok {
		return string(t)
	}
	return ""
}

func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
