package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/membership-service/internal/api/dto"
	"github.com/spec-kit/membership-service/internal/domain"
	"github.com/spec-kit/membership-service/internal/events"
	"github.com/spec-kit/membership-service/internal/repository"
)

// MemberService coordinates signup and read flows for members.
type MemberService struct {
	members    repository.MemberRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewMemberService builds the service.
func NewMemberService(members repository.MemberRepository, dispatcher events.Dispatcher, logger *zap.Logger) *MemberService {
	return &MemberService{
		members:    members,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Signup validates a signup payload and creates the member. Duplicate
// emails are arbitrated by the store's unique index, never by a
// check-then-insert sequence.
func (s *MemberService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.Member, error) {
	record, err := ValidateSignup(req)
	if err != nil {
		return nil, err
	}

	member, err := s.members.Create(ctx, *record)
	if err != nil {
		return nil, err
	}

	s.publishMemberCreated(ctx, member)
	return member, nil
}

// GetMember fetches one member by id.
func (s *MemberService) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	return s.members.GetByID(ctx, id)
}

// ListMembers translates list parameters, runs the paginated query,
// and computes the page window.
func (s *MemberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, domain.Pagination, error) {
	query, err := TranslateListQuery(params)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	members, totalCount, err := s.members.List(ctx, query)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return members, domain.NewPagination(query.Page, query.Limit, totalCount), nil
}

func (s *MemberService) publishMemberCreated(ctx context.Context, member *domain.Member) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventMemberCreated,
		MemberID:  member.ID.Hex(),
		Timestamp: time.Now().UTC(),
		Payload: events.MemberCreatedPayload{
			Email:                  member.Email,
			NewsletterSubscription: member.NewsletterSubscription,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish member_created", zap.Error(err))
	}
}
