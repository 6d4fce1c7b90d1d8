// Document HTTP handlers.
//
// This file exposes REST endpoints for resumes and CVs:
//   - POST   /document/create                    (create, Idempotency-Key aware)
//   - GET    /document/{id}
//   - PUT    /document/{id}                      (partial update)
//   - DELETE /document/{id}
//   - GET    /document/user/{github_username}    (list, weak ETag support)
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a document was already
// created under that key, the handler returns that document with
// `Idempotency-Replayed: true` instead of creating another one.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/http/middleware"
	"github.com/tbourn/go-career-backend/internal/services"
)

// headerReplayed marks a response served from a stored idempotent result.
const headerReplayed = "Idempotency-Replayed"

//
// DTOs
//

// CreateDocumentRequest is the JSON payload for saving a document on the
// profile of the user owning GitHubUsername.
type CreateDocumentRequest struct {
	GitHubUsername string            `json:"github_username" binding:"required,notblank" example:"edsger"`
	DocumentName   *string           `json:"document_name" binding:"omitempty,max=255" example:"Backend CV"`
	DocumentType   *string           `json:"document_type" binding:"omitempty,max=32" example:"RESUME"`
	DocumentKind   *string           `json:"document_kind" binding:"omitempty,max=32" example:"BASE"`
	Latex          *string           `json:"latex"`
	BaseStructure  domain.JSONObject `json:"base_structure" swaggertype:"object"`
}

// UpdateDocumentRequest is the JSON payload of a partial document update.
// Omitted fields keep their stored value.
type UpdateDocumentRequest struct {
	DocumentName  *string           `json:"document_name" binding:"omitempty,max=255"`
	DocumentType  *string           `json:"document_type" binding:"omitempty,max=32"`
	DocumentKind  *string           `json:"document_kind" binding:"omitempty,max=32"`
	Latex         *string           `json:"latex"`
	BaseStructure domain.JSONObject `json:"base_structure" swaggertype:"object"`
}

// ListDocumentsResponse wraps the documents of a member.
type ListDocumentsResponse struct {
	Documents []domain.Document `json:"documents"`
}

// CreateDocument godoc
// @ID          createDocument
// @Summary     Save a document
// @Description Creates a document on the profile of the given GitHub user. Supports Idempotency-Key replay.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header    string  false  "Client key for safe retries"
// @Param       body             body      handlers.CreateDocumentRequest  true  "Document payload"
// @Success     201              {object}  domain.Document
// @Success     200              {object}  domain.Document  "Replayed result"
// @Header      200              {string}  Idempotency-Replayed  "true when replayed"
// @Failure     400              {object}  apperr.Envelope  "Invalid Idempotency-Key"
// @Failure     404              {object}  apperr.Envelope  "GitHub username or profile not found"
// @Failure     422              {object}  apperr.Envelope  "Validation error"
// @Router      /document/create [post]
func (h *Handlers) CreateDocument(c *gin.Context) {
	ctx := c.Request.Context()
	key, hasKey := middleware.GetIdempotencyKey(c)

	if hasKey && middleware.IsReplay(c) {
		if d, found := h.docs.Replay(ctx, key); found {
			c.Header(headerReplayed, "true")
			ok(c, http.StatusOK, d)
			return
		}
	}

	var req CreateDocumentRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	d, err := h.docs.Create(ctx, strings.TrimSpace(req.GitHubUsername), &domain.Document{
		DocumentName:  req.DocumentName,
		DocumentType:  req.DocumentType,
		DocumentKind:  req.DocumentKind,
		Latex:         req.Latex,
		BaseStructure: req.BaseStructure,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if hasKey {
		if err := h.docs.Remember(ctx, key, d.ID, http.StatusCreated); err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Str("document_id", d.ID).Msg("idempotency record not stored")
		}
	}
	ok(c, http.StatusCreated, d)
}

// GetDocument godoc
// @ID          getDocument
// @Summary     Get a document
// @Tags        Documents
// @Produce     json
// @Param       id   path      string  true  "Document ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Document
// @Failure     404  {object}  apperr.Envelope  "Document not found"
// @Failure     422  {object}  apperr.Envelope  "Malformed ID"
// @Router      /document/{id} [get]
func (h *Handlers) GetDocument(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	d, err := h.docs.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// UpdateDocument godoc
// @ID          updateDocument
// @Summary     Update a document
// @Description Changes only the fields present in the body.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       id    path      string  true  "Document ID (UUID)"  format(uuid)
// @Param       body  body      handlers.UpdateDocumentRequest  true  "Fields to change"
// @Success     200   {object}  domain.Document
// @Failure     404   {object}  apperr.Envelope  "Document not found"
// @Failure     422   {object}  apperr.Envelope  "Validation error"
// @Router      /document/{id} [put]
func (h *Handlers) UpdateDocument(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var req UpdateDocumentRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	d, err := h.docs.Update(c.Request.Context(), id, services.DocumentPatch{
		DocumentName:  req.DocumentName,
		DocumentType:  req.DocumentType,
		DocumentKind:  req.DocumentKind,
		Latex:         req.Latex,
		BaseStructure: req.BaseStructure,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// DeleteDocument godoc
// @ID          deleteDocument
// @Summary     Delete a document
// @Tags        Documents
// @Produce     json
// @Param       id   path      string  true  "Document ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  apperr.Envelope  "Document not found"
// @Failure     422  {object}  apperr.Envelope  "Malformed ID"
// @Router      /document/{id} [delete]
func (h *Handlers) DeleteDocument(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := h.docs.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: msg})
}

// ListDocuments godoc
// @ID          listDocuments
// @Summary     List a member's documents
// @Description Newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Documents
// @Produce     json
// @Param       github_username  path      string  true   "GitHub username"
// @Param       If-None-Match    header    string  false  "Return 304 if ETag matches"
// @Success     200              {object}  handlers.ListDocumentsResponse
// @Header      200              {string}  ETag  "Weak ETag for current result"
// @Success     304              {string}  string "Not Modified"
// @Failure     404              {object}  apperr.Envelope  "GitHub username or profile not found"
// @Router      /document/user/{github_username} [get]
func (h *Handlers) ListDocuments(c *gin.Context) {
	docs, etag, err := h.docs.ListByGitHub(c.Request.Context(), c.Param("github_username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return
	}
	ok(c, http.StatusOK, ListDocumentsResponse{Documents: docs})
}
