package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booklib-backend/internal/domains/author"
	"booklib-backend/internal/shared/apperror"
	"booklib-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// parseID validates the :id path segment: numeric and positive.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeErr maps a service error onto the wire: 4xx with {"error": message}
// for classified errors, 500 otherwise.
func writeErr(c *gin.Context, err error) {
	response.Error(c, apperror.HTTPStatus(err), err.Error())
}

// bindBody decodes the JSON body into out. An absent or empty body is an
// empty field bag, not a bind failure, so validation produces the field
// messages instead of a decoder error.
func bindBody(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if !bindBody(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		writeErr(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid author id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a.ToDetailResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}

	rows := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		rows[i] = *a.ToDetailResponse()
	}

	response.JSON(c, http.StatusOK, rows)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "invalid id")
		return
	}

	var req author.UpdateAuthorRequest
	if !bindBody(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeErr(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}

	response.NoContent(c)
}
