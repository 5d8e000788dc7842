package service

import (
	"html"
	"net/mail"
	"regexp"
	"strings"

	"github.com/spec-kit/membership-service/internal/api/dto"
	"github.com/spec-kit/membership-service/internal/domain"
	"github.com/spec-kit/membership-service/pkg/util"
)

// phonePattern is part of the external contract: optional leading +,
// then digits/spaces/hyphens, at least 10 characters total.
var (
	phonePattern      = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	phoneStripPattern = regexp.MustCompile(`[^0-9+\s-]`)
)

const maxNameLength = 50

// ValidateSignup checks a raw signup payload and, when it is valid,
// returns the sanitized member-creation record. Sanitization runs
// strictly after validation so that errors report on the caller's
// original input.
func ValidateSignup(req dto.SignupRequest) (*domain.NewMember, error) {
	missing := missingFields(req)
	if len(missing) > 0 {
		return nil, util.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}

	if len(strings.TrimSpace(req.FirstName)) > maxNameLength {
		return nil, util.NewValidationError("firstName exceeds 50 characters", nil)
	}
	if len(strings.TrimSpace(req.LastName)) > maxNameLength {
		return nil, util.NewValidationError("lastName exceeds 50 characters", nil)
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return nil, util.NewValidationError("invalid email format", nil)
	}

	if !phonePattern.MatchString(strings.TrimSpace(req.PhoneNumber)) {
		return nil, util.NewValidationError("invalid phone number format", nil)
	}

	record := &domain.NewMember{
		FirstName:     html.EscapeString(strings.TrimSpace(req.FirstName)),
		LastName:      html.EscapeString(strings.TrimSpace(req.LastName)),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:   phoneStripPattern.ReplaceAllString(strings.TrimSpace(req.PhoneNumber), ""),
		AcceptedTerms: *req.AcceptedTerms,
	}
	if req.NewsletterSubscription != nil {
		record.NewsletterSubscription = *req.NewsletterSubscription
	}
	return record, nil
}

func missingFields(req dto.SignupRequest) []string {
	var missing []string
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if req.AcceptedTerms == nil {
		missing = append(missing, "acceptedTerms")
	}
	return missing
}
