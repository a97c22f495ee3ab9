package service

import (
	"context"

	"nutriledger/internal/domain/entity"
)

// AnalysisRequest is the input to the image analyzer.
type AnalysisRequest struct {
	Image       []byte
	MIMEType    string
	Description string // optional user text
}

// AnalysisResult is the structured output of the image analyzer.
type AnalysisResult struct {
	Description string            // analyzer's description of the plate
	Confidence  *float64          // overall confidence reported by the analyzer, informational
	Items       []entity.FoodItem // recognised foods, may be empty
}

// ImageAnalyzer turns a meal photo into food items.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}
