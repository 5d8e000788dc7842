package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/membership-service/internal/api/dto"
	"github.com/spec-kit/membership-service/internal/csrf"
	"github.com/spec-kit/membership-service/internal/service"
	"github.com/spec-kit/membership-service/pkg/util"
)

// CSRFHeader is the request header carrying the anti-forgery token on
// state-changing requests.
const CSRFHeader = "X-CSRF-Token"

// MembershipHandler exposes member signup and listing endpoints.
type MembershipHandler struct {
	members     *service.MemberService
	tokens      *csrf.TokenManager
	csrfEnabled bool
}

// NewMembershipHandler constructs handler.
func NewMembershipHandler(members *service.MemberService, tokens *csrf.TokenManager, csrfEnabled bool) *MembershipHandler {
	return &MembershipHandler{members: members, tokens: tokens, csrfEnabled: csrfEnabled}
}

// CSRFToken handles GET /api/v1/membership/csrf-token.
func (h *MembershipHandler) CSRFToken(c *fiber.Ctx) error {
	token, expiresAt, err := h.tokens.Issue()
	if err != nil {
		return util.NewInternalError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     csrf.CookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  token,
	})
}

// Signup handles POST /api/v1/membership/signup.
func (h *MembershipHandler) Signup(c *fiber.Ctx) error {
	// CSRF enforcement is off by default for local operation; the
	// verification contract still exists either way.
	if h.csrfEnabled {
		if err := h.tokens.Verify(c.Get(CSRFHeader), c.Cookies(csrf.CookieName)); err != nil {
			return err
		}
	}

	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	member, err := h.members.Signup(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"member": dto.NewMemberResponse(member),
		},
	})
}

// List handles GET /api/v1/membership.
func (h *MembershipHandler) List(c *fiber.Ctx) error {
	var params dto.ListMembersParams
	if err := c.QueryParser(&params); err != nil {
		return util.NewValidationError("invalid query parameters", nil)
	}

	members, pagination, err := h.members.ListMembers(c.UserContext(), params)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"members":    dto.NewMemberListResponse(members),
			"pagination": pagination,
		},
	})
}

// GetByID handles GET /api/v1/membership/:id.
func (h *MembershipHandler) GetByID(c *fiber.Ctx) error {
	member, err := h.members.GetMember(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"member": dto.NewMemberResponse(member),
		},
	})
}
