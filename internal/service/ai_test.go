package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGeminiClient struct {
	text string
	err  error

	lastPrompt string
}

func (s *stubGeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.text, s.err
}

func TestDescribeUsesGeneratedText(t *testing.T) {
	stub := &stubGeminiClient{text: "A mug born of river clay."}
	svc := NewAIService(stub)

	got := svc.Describe(context.Background(), "Glazed Mug", "Pottery", "river clay, ash glaze")
	assert.Equal(t, "A mug born of river clay.", got)
	assert.True(t, strings.Contains(stub.lastPrompt, "Glazed Mug"))
	assert.True(t, strings.Contains(stub.lastPrompt, "river clay, ash glaze"))
}

func TestDescribeDegradesToPlaceholder(t *testing.T) {
	svc := NewAIService(&stubGeminiClient{err: errors.New("quota exceeded")})

	got := svc.Describe(context.Background(), "Glazed Mug", "Pottery", "notes")
	assert.Equal(t, descriptionFallback, got)
}

func TestSuggestPriceDegradesToPlaceholder(t *testing.T) {
	svc := NewAIService(&stubGeminiClient{err: errors.New("timeout")})

	got := svc.SuggestPrice(context.Background(), "Glazed Mug", "Pottery", "notes")
	assert.Equal(t, priceFallback, got)
}
