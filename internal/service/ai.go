package service

import (
	"context"
	"fmt"

	"github.com/lokesh-18a/artiflex/internal/client"
	"github.com/lokesh-18a/artiflex/internal/logging"
)

const (
	descriptionFallback = "A handcrafted piece, made with care. Description coming soon."
	priceFallback       = "Price suggestion unavailable. Please set a price based on materials and effort."
)

// AIService generates marketing copy for products. Failures never surface to
// the caller; they degrade to fixed placeholder strings.
type AIService interface {
	Describe(ctx context.Context, name, category, artistNotes string) string
	SuggestPrice(ctx context.Context, name, category, artistNotes string) string
}

type aiServiceImpl struct {
	gemini client.GeminiClient
}

func NewAIService(gemini client.GeminiClient) AIService {
	return &aiServiceImpl{
		gemini: gemini,
	}
}

func (s *aiServiceImpl) Describe(ctx context.Context, name, category, artistNotes string) string {
	prompt := fmt.Sprintf(`You are an expert copywriter for an artisan marketplace called Artiflex. Your task is to write a compelling, evocative, story-driven product description.

Product Name: %s
Category: %s
Artist's Notes: %s

Write a description that tells a short story about the inspiration or creation process, highlights the craftsmanship and materials used, and connects with the customer. Format it as simple paragraphs for a web page.`, name, category, artistNotes)

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		logging.FromCtx(ctx).Warn("describe product failed", "error", err)
		return descriptionFallback
	}
	return text
}

func (s *aiServiceImpl) SuggestPrice(ctx context.Context, name, category, artistNotes string) string {
	prompt := fmt.Sprintf(`You are an e-commerce pricing consultant specializing in handcrafted goods.

Product Name: %s
Category: %s
Artist's Notes on materials and effort: %s

Suggest a price range in USD with a brief justification. Format the output as:

Suggested Price Range: $XX.XX - $YY.YY
Justification: [one paragraph]`, name, category, artistNotes)

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		logging.FromCtx(ctx).Warn("suggest price failed", "error", err)
		return priceFallback
	}
	return text
}
