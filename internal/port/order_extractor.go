package port

import (
	"context"

	"balju/internal/domain"
)

// InlineImage is an image delivered inline as base64 data.
type InlineImage struct {
	MIMEType string
	Data     string // base64 payload, no data-URL prefix
}

// ExtractInput carries the source material for order extraction.
// Exactly one of Text or Image is set.
type ExtractInput struct {
	Text  string
	Image *InlineImage
}

// ExtractOutput contains the structured result from an LLM extractor.
type ExtractOutput struct {
	Orders    []domain.OrderItem
	ModelUsed string
}

// OrderExtractor abstracts LLM-based purchase-order extraction.
type OrderExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}
