package validation

import (
	"regexp"
	"strings"

	"studyaid/internal/domain"
)

// MaxInputTextLength bounds the pasted study text. Model context windows
// are the real limit; this keeps request bodies sane before that.
const MaxInputTextLength = 50000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates the generate request fields.
// Whether the type exists in the catalog is the compiler's concern; this
// only checks the request is well formed.
func (v *Validator) ValidateGenerateRequest(promptType, text string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(promptType) == "" {
		errors = append(errors, domain.NewMissingFieldError("type"))
	} else if !isValidPromptType(promptType) {
		errors = append(errors, domain.NewInvalidFormatError("type", promptType))
	}

	if strings.TrimSpace(text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if len(text) > MaxInputTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", len(text), 1, MaxInputTextLength))
	}

	return errors
}

// ValidateSaveHistoryRequest validates the save request fields.
func (v *Validator) ValidateSaveHistoryRequest(recordType, content string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(recordType) == "" {
		errors = append(errors, domain.NewMissingFieldError("type"))
	}
	if strings.TrimSpace(content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	}

	return errors
}

// isValidPromptType checks the request-type key shape (lowercase
// alphanumeric with underscores, as the catalog file uses).
func isValidPromptType(s string) bool {
	validType := regexp.MustCompile(`^[a-z0-9_]{1,64}$`)
	return validType.MatchString(s)
}
