package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

// MinTextLength is the shortest text, after trimming, the classifier accepts.
const MinTextLength = 20

// ValidationError blocks a request before it is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Build turns raw input for a mode into an AnalysisRequest.
func Build(mode Mode, input string) (models.AnalysisRequest, error) {
	value := strings.TrimSpace(input)
	switch mode {
	case ModeText:
		if value == "" {
			return models.AnalysisRequest{}, &ValidationError{Field: "text", Message: "Please enter some text."}
		}
		if utf8.RuneCountInString(value) < MinTextLength {
			return models.AnalysisRequest{}, &ValidationError{Field: "text", Message: fmt.Sprintf("Text is too short (min %d chars).", MinTextLength)}
		}
		return models.AnalysisRequest{Kind: models.KindText, Value: value}, nil
	case ModeQuery:
		if value == "" {
			return models.AnalysisRequest{}, &ValidationError{Field: "query", Message: "Please enter a topic to search."}
		}
		return models.AnalysisRequest{Kind: models.KindQuery, Value: value}, nil
	case ModeURL:
		if value == "" {
			return models.AnalysisRequest{}, &ValidationError{Field: "url", Message: "Please enter a URL."}
		}
		return models.AnalysisRequest{Kind: models.KindURL, Value: value}, nil
	}
	return models.AnalysisRequest{}, &ValidationError{Field: "mode", Message: fmt.Sprintf("mode %q does not take input", mode)}
}
