package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/membership-service/internal/api/dto"
	"github.com/spec-kit/membership-service/pkg/util"
)

func boolPtr(v bool) *bool { return &v }

func validSignupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "John.Doe@Example.com",
		PhoneNumber:   "+1 555-123-4567",
		AcceptedTerms: boolPtr(true),
	}
}

func TestValidateSignupMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.SignupRequest)
		field  string
	}{
		{"firstName", func(r *dto.SignupRequest) { r.FirstName = "" }, "firstName"},
		{"lastName", func(r *dto.SignupRequest) { r.LastName = "  " }, "lastName"},
		{"email", func(r *dto.SignupRequest) { r.Email = "" }, "email"},
		{"phoneNumber", func(r *dto.SignupRequest) { r.PhoneNumber = "" }, "phoneNumber"},
		{"acceptedTerms", func(r *dto.SignupRequest) { r.AcceptedTerms = nil }, "acceptedTerms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignupRequest()
			tt.mutate(&req)

			record, err := ValidateSignup(req)
			require.Error(t, err)
			require.Nil(t, record)

			domainErr := util.ToDomainError(err)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
			assert.Equal(t, "missing required fields", domainErr.Message)
			assert.Contains(t, domainErr.Details["fields"], tt.field)
		})
	}
}

func TestValidateSignupAllFieldsMissing(t *testing.T) {
	record, err := ValidateSignup(dto.SignupRequest{})
	require.Error(t, err)
	require.Nil(t, record)

	domainErr := util.ToDomainError(err)
	assert.Len(t, domainErr.Details["fields"], 5)
}

func TestValidateSignupInvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "missing@tld@twice", "spaces in@addr.com x", "@nouser.com"} {
		req := validSignupRequest()
		req.Email = email

		_, err := ValidateSignup(req)
		require.Error(t, err, "email %q should be rejected", email)
		assert.Equal(t, "invalid email format", util.ToDomainError(err).Message)
	}
}

func TestValidateSignupInvalidPhone(t *testing.T) {
	for _, phone := range []string{"12345", "555-123", "abcdefghijk", "555.123.4567x", "+1(555)1234567"} {
		req := validSignupRequest()
		req.PhoneNumber = phone

		_, err := ValidateSignup(req)
		require.Error(t, err, "phone %q should be rejected", phone)
		assert.Equal(t, "invalid phone number format", util.ToDomainError(err).Message)
	}
}

func TestValidateSignupNameTooLong(t *testing.T) {
	req := validSignupRequest()
	req.FirstName = strings.Repeat("A", 51)

	_, err := ValidateSignup(req)
	require.Error(t, err)
	assert.Equal(t, "firstName exceeds 50 characters", util.ToDomainError(err).Message)
}

func TestValidateSignupNormalization(t *testing.T) {
	req := dto.SignupRequest{
		FirstName:              "  <b>John</b> ",
		LastName:               " Doe ",
		Email:                  " John.Doe@Example.com ",
		PhoneNumber:            " +1 555-123-4567 ",
		AcceptedTerms:          boolPtr(true),
		NewsletterSubscription: boolPtr(true),
	}

	record, err := ValidateSignup(req)
	require.NoError(t, err)

	assert.Equal(t, "&lt;b&gt;John&lt;/b&gt;", record.FirstName)
	assert.Equal(t, "Doe", record.LastName)
	assert.Equal(t, "john.doe@example.com", record.Email)
	assert.Equal(t, "+1 555-123-4567", record.PhoneNumber)
	assert.True(t, record.AcceptedTerms)
	assert.True(t, record.NewsletterSubscription)
}

func TestValidateSignupNewsletterDefaultsFalse(t *testing.T) {
	record, err := ValidateSignup(validSignupRequest())
	require.NoError(t, err)
	assert.False(t, record.NewsletterSubscription)
}

func TestValidateSignupAcceptedTermsFalseIsPresent(t *testing.T) {
	// Presence is required, not truth; an explicit false still validates.
	req := validSignupRequest()
	req.AcceptedTerms = boolPtr(false)

	record, err := ValidateSignup(req)
	require.NoError(t, err)
	assert.False(t, record.AcceptedTerms)
}
