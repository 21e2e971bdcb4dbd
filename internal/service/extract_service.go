package service

import (
	"context"
	"log"
	"strings"

	"balju/internal/domain"
	"balju/internal/extractor"
	"balju/internal/port"
)

// ExtractService defines the order extraction contract.
type ExtractService interface {
	// ExtractOrders sends raw text (isImage=false) or a base64-encoded image
	// (isImage=true, bare payload or data URL) to the extractor and returns
	// the decoded order records. The returned slice is never nil on success.
	ExtractOrders(ctx context.Context, input string, isImage bool) ([]domain.OrderItem, error)
}

type extractService struct {
	extractor port.OrderExtractor
}

// NewExtractService creates an ExtractService backed by the given extractor.
func NewExtractService(ex port.OrderExtractor) ExtractService {
	return &extractService{extractor: ex}
}

func (s *extractService) ExtractOrders(ctx context.Context, input string, isImage bool) ([]domain.OrderItem, error) {
	if strings.TrimSpace(input) == "" {
		return nil, domain.ErrEmptyInput
	}

	var in port.ExtractInput
	if isImage {
		mimeType, data := extractor.SplitImageData(input)
		in.Image = &port.InlineImage{MIMEType: mimeType, Data: data}
	} else {
		in.Text = input
	}

	out, err := s.extractor.Extract(ctx, in)
	if err != nil {
		// The caller gets one fixed message regardless of cause; keep the
		// real error in the log for diagnostics.
		log.Printf("service.ExtractService: extraction failed: %v", err)
		return nil, domain.ErrExtractionFailed
	}

	orders := out.Orders
	if orders == nil {
		orders = []domain.OrderItem{}
	}
	return orders, nil
}
