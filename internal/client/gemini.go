package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ErrMissingAPIKey is returned when no inference credential is configured.
var ErrMissingAPIKey = errors.New("client: GEMINI_API_KEY is empty")

// GeminiClient wraps a genai client bound to one model name.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client for the hosted generative model API.
// Extra options are appended after the API key, e.g. option.WithEndpoint.
func NewGeminiClient(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cl, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: cl, model: strings.TrimSpace(model)}, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string { return c.model }

// GenerateContent sends one request constrained to schema and answered as JSON.
func (c *GeminiClient) GenerateContent(ctx context.Context, system *genai.Content, schema *genai.Schema, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = system
	m.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	return m.GenerateContent(ctx, parts...)
}

// GenerateContentModels lists the names of models that support generateContent.
func (c *GeminiClient) GenerateContentModels(ctx context.Context) ([]string, error) {
	var names []string
	it := c.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("client: failed to list models: %w", err)
		}
		if supportsMethod(info, "generateContent") {
			names = append(names, info.Name)
		}
	}
	return names, nil
}

// Close releases the underlying connections.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func supportsMethod(info *genai.ModelInfo, method string) bool {
	return info != nil && slices.Contains(info.SupportedGenerationMethods, method)
}
