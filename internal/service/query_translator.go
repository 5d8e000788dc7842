package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/membership-service/internal/api/dto"
	"github.com/spec-kit/membership-service/internal/domain"
	"github.com/spec-kit/membership-service/pkg/util"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	defaultSortField = "createdAt"
)

// TranslateListQuery resolves raw list-request parameters into a query
// descriptor. Numeric parameters are lenient (bad values fall back to
// defaults); the sort field is strict because unconstrained field
// names must never reach the store's query layer.
func TranslateListQuery(params dto.ListMembersParams) (domain.MemberQuery, error) {
	query := domain.MemberQuery{
		Page:      parsePositiveInt(params.Page, defaultPage),
		Limit:     parsePositiveInt(params.Limit, defaultLimit),
		SortField: defaultSortField,
		SortOrder: domain.SortDescending,
		Search:    strings.TrimSpace(params.Search),
	}
	if query.Limit > maxLimit {
		query.Limit = maxLimit
	}

	if params.SortField != "" {
		if !domain.SortableFields[params.SortField] {
			return domain.MemberQuery{}, util.NewValidationError("invalid sort field", map[string]any{"sortField": params.SortField})
		}
		query.SortField = params.SortField
	}

	if params.SortOrder == "asc" {
		query.SortOrder = domain.SortAscending
	}

	// The date range applies only when both bounds are present and
	// parseable; a single-sided or malformed range is dropped.
	if params.StartDate != "" && params.EndDate != "" {
		from, _, errFrom := parseDate(params.StartDate)
		to, dateOnly, errTo := parseDate(params.EndDate)
		if errFrom == nil && errTo == nil {
			// A date-only upper bound is inclusive of the whole day.
			if dateOnly {
				to = to.Add(24*time.Hour - time.Nanosecond)
			}
			query.CreatedFrom = &from
			query.CreatedTo = &to
		}
	}

	return query, nil
}

func parsePositiveInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}

func parseDate(value string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), true, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}
