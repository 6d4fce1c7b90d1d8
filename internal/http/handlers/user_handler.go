// Member HTTP handlers.
//
// This file exposes REST endpoints for users and the records hanging off them:
//   - POST   /user/create
//   - GET    /user/{id}
//   - GET    /user/github/{github_username}
//   - DELETE /user/{id}
//   - POST   /profile/create
//   - GET    /profile/{id}
//   - GET    /profile/user/{user_id}
//   - POST   /links/create
//   - GET    /links/user/{user_id}
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
)

//
// DTOs
//

// CreateUserRequest is the JSON payload for registering a member.
type CreateUserRequest struct {
	GitHubUsername        string  `json:"github_user_name" binding:"required,notblank,max=255" example:"edsger"`
	FirstName             *string `json:"first_name" binding:"omitempty,max=255" example:"Edsger"`
	MiddleName            *string `json:"middle_name" binding:"omitempty,max=255"`
	LastName              *string `json:"last_name" binding:"omitempty,max=255" example:"Dijkstra"`
	Rank                  string  `json:"rank" binding:"omitempty,max=32" example:"UNRANKED"`
	PrimarySpecialization string  `json:"primary_specialization" binding:"required,notblank,max=64" example:"BACKEND"`
	Bio                   *string `json:"bio"`
	DreamCompany          *string `json:"dream_company" binding:"omitempty,max=255"`
	DreamPosition         *string `json:"dream_position" binding:"omitempty,max=255"`
}

// CreateProfileRequest is the JSON payload for opening a profile.
type CreateProfileRequest struct {
	UserID string `json:"user_id" binding:"required,uuid" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// CreateLinksRequest is the JSON payload for recording a member's accounts.
type CreateLinksRequest struct {
	UserID           string  `json:"user_id" binding:"required,uuid" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	PortfolioLink    *string `json:"portfolio_link" binding:"omitempty,url,max=512"`
	GitHubUsername   string  `json:"github_user_name" binding:"required,notblank,max=255" example:"edsger"`
	GitHubLink       *string `json:"github_link" binding:"omitempty,url,max=512"`
	LinkedInUsername string  `json:"linkedin_user_name" binding:"required,notblank,max=255" example:"edsger-dijkstra"`
	LinkedInLink     *string `json:"linkedin_link" binding:"omitempty,url,max=512"`
	LeetcodeUsername string  `json:"leetcode_user_name" binding:"required,notblank,max=255" example:"ewd"`
	LeetcodeLink     *string `json:"leetcode_link" binding:"omitempty,url,max=512"`
	OrcidID          *string `json:"orcid_id" binding:"omitempty,max=64"`
	PrimaryEmail     string  `json:"primary_email" binding:"omitempty,email" example:"ewd@example.org"`
	WorkEmail        *string `json:"work_email" binding:"omitempty,email"`
}

//
// Users
//

// CreateUser godoc
// @ID          createUser
// @Summary     Register a member
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateUserRequest  true  "User payload"
// @Success     201   {object}  domain.User
// @Failure     409   {object}  apperr.Envelope  "GitHub username already exists"
// @Failure     422   {object}  apperr.Envelope  "Validation error"
// @Failure     500   {object}  apperr.Envelope  "Internal error"
// @Router      /user/create [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	u, err := h.users.Create(c.Request.Context(), &domain.User{
		GitHubUsername:        req.GitHubUsername,
		FirstName:             req.FirstName,
		MiddleName:            req.MiddleName,
		LastName:              req.LastName,
		Rank:                  strings.ToUpper(strings.TrimSpace(req.Rank)),
		PrimarySpecialization: strings.TrimSpace(req.PrimarySpecialization),
		Bio:                   req.Bio,
		DreamCompany:          req.DreamCompany,
		DreamPosition:         req.DreamPosition,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, u)
}

// GetUser godoc
// @ID          getUser
// @Summary     Get a member by ID
// @Tags        Users
// @Produce     json
// @Param       id   path      string  true  "User ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.User
// @Failure     404  {object}  apperr.Envelope  "User not found"
// @Failure     422  {object}  apperr.Envelope  "Malformed ID"
// @Router      /user/{id} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// GetUserByGitHub godoc
// @ID          getUserByGitHub
// @Summary     Get a member by GitHub username
// @Tags        Users
// @Produce     json
// @Param       github_username  path      string  true  "GitHub username"
// @Success     200              {object}  domain.User
// @Failure     404              {object}  apperr.Envelope  "GitHub username not found"
// @Router      /user/github/{github_username} [get]
func (h *Handlers) GetUserByGitHub(c *gin.Context) {
	u, err := h.users.GetByGitHub(c.Request.Context(), c.Param("github_username"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete a member
// @Description Removes the user together with their profile, links and documents.
// @Tags        Users
// @Param       id   path    string  true  "User ID (UUID)"  format(uuid)
// @Success     204  {string} string "No Content"
// @Failure     404  {object} apperr.Envelope  "User not found"
// @Failure     422  {object} apperr.Envelope  "Malformed ID"
// @Router      /user/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

//
// Profiles
//

// CreateProfile godoc
// @ID          createProfile
// @Summary     Open a profile for a member
// @Tags        Profiles
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateProfileRequest  true  "Profile payload"
// @Success     201   {object}  domain.Profile
// @Failure     404   {object}  apperr.Envelope  "User not found"
// @Failure     409   {object}  apperr.Envelope  "Profile already exists"
// @Failure     422   {object}  apperr.Envelope  "Validation error"
// @Router      /profile/create [post]
func (h *Handlers) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	p, err := h.profiles.Create(c.Request.Context(), req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// GetProfile godoc
// @ID          getProfile
// @Summary     Get a profile by ID
// @Tags        Profiles
// @Produce     json
// @Param       id   path      string  true  "Profile ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Profile
// @Failure     404  {object}  apperr.Envelope  "Profile not found"
// @Router      /profile/{id} [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	p, err := h.profiles.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// GetProfileByUser godoc
// @ID          getProfileByUser
// @Summary     Get the profile of a member
// @Tags        Profiles
// @Produce     json
// @Param       user_id  path      string  true  "User ID (UUID)"  format(uuid)
// @Success     200      {object}  domain.Profile
// @Failure     404      {object}  apperr.Envelope  "Profile not found"
// @Router      /profile/user/{user_id} [get]
func (h *Handlers) GetProfileByUser(c *gin.Context) {
	uid, err := pathUUID(c, "user_id")
	if err != nil {
		fail(c, err)
		return
	}
	p, err := h.profiles.GetByUser(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

//
// Links
//

// CreateLinks godoc
// @ID          createLinks
// @Summary     Record a member's external accounts
// @Tags        Links
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateLinksRequest  true  "Links payload"
// @Success     201   {object}  domain.Links
// @Failure     404   {object}  apperr.Envelope  "User not found"
// @Failure     409   {object}  apperr.Envelope  "Links already exist or handle taken"
// @Failure     422   {object}  apperr.Envelope  "Validation error"
// @Router      /links/create [post]
func (h *Handlers) CreateLinks(c *gin.Context) {
	var req CreateLinksRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	l, err := h.links.Create(c.Request.Context(), &domain.Links{
		UserID:           req.UserID,
		PortfolioLink:    req.PortfolioLink,
		GitHubUsername:   strings.TrimSpace(req.GitHubUsername),
		GitHubLink:       req.GitHubLink,
		LinkedInUsername: strings.TrimSpace(req.LinkedInUsername),
		LinkedInLink:     req.LinkedInLink,
		LeetcodeUsername: strings.TrimSpace(req.LeetcodeUsername),
		LeetcodeLink:     req.LeetcodeLink,
		OrcidID:          req.OrcidID,
		PrimaryEmail:     req.PrimaryEmail,
		WorkEmail:        req.WorkEmail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, l)
}

// GetLinksByUser godoc
// @ID          getLinksByUser
// @Summary     Get the external accounts of a member
// @Tags        Links
// @Produce     json
// @Param       user_id  path      string  true  "User ID (UUID)"  format(uuid)
// @Success     200      {object}  domain.Links
// @Failure     404      {object}  apperr.Envelope  "Links not found"
// @Router      /links/user/{user_id} [get]
func (h *Handlers) GetLinksByUser(c *gin.Context) {
	uid, err := pathUUID(c, "user_id")
	if err != nil {
		fail(c, err)
		return
	}
	l, err := h.links.GetByUser(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, l)
}
