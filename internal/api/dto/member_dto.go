package dto

import (
	"time"

	"github.com/spec-kit/membership-service/internal/domain"
)

// SignupRequest is the raw signup payload. Boolean fields are pointers
// so that an absent value is distinguishable from an explicit false.
type SignupRequest struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	PhoneNumber            string `json:"phoneNumber"`
	AcceptedTerms          *bool  `json:"acceptedTerms"`
	NewsletterSubscription *bool  `json:"newsletterSubscription"`
}

// ListMembersParams carries the raw query parameters of a list request.
type ListMembersParams struct {
	Page      string `query:"page"`
	Limit     string `query:"limit"`
	SortField string `query:"sortField"`
	SortOrder string `query:"sortOrder"`
	Search    string `query:"search"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// MemberResponse is the JSON shape of one member.
type MemberResponse struct {
	ID                     string    `json:"id"`
	FirstName              string    `json:"firstName"`
	LastName               string    `json:"lastName"`
	Email                  string    `json:"email"`
	PhoneNumber            string    `json:"phoneNumber"`
	AcceptedTerms          bool      `json:"acceptedTerms"`
	NewsletterSubscription bool      `json:"newsletterSubscription"`
	CreatedAt              time.Time `json:"createdAt"`
}

// NewMemberResponse maps a domain member to its response shape.
func NewMemberResponse(member *domain.Member) MemberResponse {
	return MemberResponse{
		ID:                     member.ID.Hex(),
		FirstName:              member.FirstName,
		LastName:               member.LastName,
		Email:                  member.Email,
		PhoneNumber:            member.PhoneNumber,
		AcceptedTerms:          member.AcceptedTerms,
		NewsletterSubscription: member.NewsletterSubscription,
		CreatedAt:              member.CreatedAt,
	}
}

// NewMemberListResponse maps a page of members.
func NewMemberListResponse(members []domain.Member) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for i := range members {
		result = append(result, NewMemberResponse(&members[i]))
	}
	return result
}
