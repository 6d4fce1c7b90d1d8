// Opportunity HTTP handlers.
//
// This file exposes REST endpoints for organizations and their job postings:
//   - POST   /organization/create
//   - GET    /organization/{id}
//   - POST   /job/create
//   - GET    /job/{id}
//   - GET    /job/organization/{organization_id}   (paginated, weak ETag support)
//   - DELETE /job/{id}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
)

//
// DTOs
//

// CreateOrganizationRequest is the JSON payload for registering an organization.
type CreateOrganizationRequest struct {
	Name     string  `json:"name" binding:"required,notblank,max=255" example:"dijkstra guild"`
	Image    *string `json:"image" binding:"omitempty,url,max=512"`
	RepoLink *string `json:"repo_link" binding:"omitempty,url,max=512"`
}

// CreateJobRequest is the JSON payload for posting a job. Technologies must
// name tools from the catalogue.
type CreateJobRequest struct {
	OrganizationID  string   `json:"organization" binding:"required,uuid" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Title           *string  `json:"title" binding:"omitempty,max=255" example:"Backend Engineer"`
	Department      *string  `json:"department" binding:"omitempty,max=255"`
	CompanyName     *string  `json:"company_name" binding:"omitempty,max=255"`
	CompanyLogo     *string  `json:"company_logo" binding:"omitempty,url,max=512"`
	Location        *string  `json:"location" binding:"omitempty,max=255"`
	LocationType    *string  `json:"location_type" binding:"omitempty,oneof=REMOTE HYBRID ONSITE"`
	EmploymentType  *string  `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	ExperienceLevel *string  `json:"experience_level" binding:"omitempty,max=64"`
	ExperienceYOE   *float64 `json:"experience_yoe" binding:"omitempty,gte=0"`
	SalaryMin       *int64   `json:"salary_annual_min" binding:"omitempty,gte=0"`
	SalaryMax       *int64   `json:"salary_annual_max" binding:"omitempty,gte=0"`
	SalaryCurrency  *string  `json:"salary_currency" binding:"omitempty,len=3"`
	Description     *string  `json:"description"`
	Featured        *bool    `json:"featured"`
	Category        *string  `json:"category" binding:"omitempty,max=64"`
	Perks           []string `json:"perks" binding:"omitempty,max=50"`
	Technologies    []string `json:"technologies" binding:"omitempty,max=50" example:"GO,POSTGRESQL"`
}

// ListJobsResponse wraps a page of jobs and pagination information.
type ListJobsResponse struct {
	Jobs       []domain.Job `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}

//
// Organizations
//

// CreateOrganization godoc
// @ID          createOrganization
// @Summary     Register an organization
// @Description All-lowercase names are title-cased; whitespace is collapsed.
// @Tags        Organizations
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateOrganizationRequest  true  "Organization payload"
// @Success     201   {object}  domain.Organization
// @Failure     422   {object}  apperr.Envelope  "Validation error"
// @Router      /organization/create [post]
func (h *Handlers) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	name := req.Name
	o, err := h.orgs.Create(c.Request.Context(), &domain.Organization{
		Name:     &name,
		Image:    req.Image,
		RepoLink: req.RepoLink,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, o)
}

// GetOrganization godoc
// @ID          getOrganization
// @Summary     Get an organization
// @Tags        Organizations
// @Produce     json
// @Param       id   path      string  true  "Organization ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Organization
// @Failure     404  {object}  apperr.Envelope  "Organization not found"
// @Router      /organization/{id} [get]
func (h *Handlers) GetOrganization(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	o, err := h.orgs.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, o)
}

//
// Jobs
//

// CreateJob godoc
// @ID          createJob
// @Summary     Post a job
// @Tags        Jobs
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateJobRequest  true  "Job payload"
// @Success     201   {object}  domain.Job
// @Failure     400   {object}  apperr.Envelope  "Unknown technologies or constraint violation"
// @Failure     404   {object}  apperr.Envelope  "Organization not found"
// @Failure     422   {object}  apperr.Envelope  "Validation error"
// @Router      /job/create [post]
func (h *Handlers) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	j, err := h.jobs.Create(c.Request.Context(), &domain.Job{
		OrganizationID:  req.OrganizationID,
		Title:           req.Title,
		Department:      req.Department,
		CompanyName:     req.CompanyName,
		CompanyLogo:     req.CompanyLogo,
		Location:        req.Location,
		LocationType:    req.LocationType,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		ExperienceYOE:   req.ExperienceYOE,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		Description:     req.Description,
		Featured:        req.Featured,
		Category:        req.Category,
		Perks:           domain.StringList(req.Perks),
		Technologies:    domain.StringList(req.Technologies),
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, j)
}

// GetJob godoc
// @ID          getJob
// @Summary     Get a job
// @Tags        Jobs
// @Produce     json
// @Param       id   path      string  true  "Job ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Job
// @Failure     404  {object}  apperr.Envelope  "Job not found"
// @Router      /job/{id} [get]
func (h *Handlers) GetJob(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	j, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, j)
}

// ListJobs godoc
// @ID          listJobs
// @Summary     List an organization's jobs (paginated)
// @Description Newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Jobs
// @Produce     json
// @Param       organization_id  path      string  true   "Organization ID (UUID)"  format(uuid)
// @Param       If-None-Match    header    string  false  "Return 304 if ETag matches"
// @Param       page             query     int     false  "Page number"     minimum(1) default(1)
// @Param       page_size        query     int     false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200              {object}  handlers.ListJobsResponse
// @Header      200              {string}  ETag  "Weak ETag for current page"
// @Success     304              {string}  string "Not Modified"
// @Failure     404              {object}  apperr.Envelope  "Organization not found"
// @Router      /job/organization/{organization_id} [get]
func (h *Handlers) ListJobs(c *gin.Context) {
	orgID, err := pathUUID(c, "organization_id")
	if err != nil {
		fail(c, err)
		return
	}
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)
	items, total, err := h.jobs.ListByOrganization(ctx, orgID, page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}

	// ETag is best effort; a stats failure only drops the header.
	if etag, err := h.jobs.ETag(ctx, orgID, page, pageSize); err == nil {
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}
	ok(c, http.StatusOK, ListJobsResponse{Jobs: items, Pagination: newPagination(page, pageSize, total)})
}

// DeleteJob godoc
// @ID          deleteJob
// @Summary     Delete a job
// @Tags        Jobs
// @Param       id   path    string  true  "Job ID (UUID)"  format(uuid)
// @Success     204  {string} string "No Content"
// @Failure     404  {object} apperr.Envelope  "Job not found"
// @Router      /job/{id} [delete]
func (h *Handlers) DeleteJob(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
