package client

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestSupportsMethod(t *testing.T) {
	tests := []struct {
		name     string
		info     *genai.ModelInfo
		expected bool
	}{
		{
			name:     "nil model",
			info:     nil,
			expected: false,
		},
		{
			name:     "generate content model",
			info:     &genai.ModelInfo{Name: "models/gemini-2.5-flash", SupportedGenerationMethods: []string{"generateContent", "countTokens"}},
			expected: true,
		},
		{
			name:     "embedding only model",
			info:     &genai.ModelInfo{Name: "models/text-embedding-004", SupportedGenerationMethods: []string{"embedContent"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, supportsMethod(tt.info, "generateContent"))
		})
	}
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	c, err := NewGeminiClient(context.Background(), "  ", "gemini-2.5-flash")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
