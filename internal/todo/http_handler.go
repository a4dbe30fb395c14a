package todo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"shelfapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func todoIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "todoID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeFields(w http.ResponseWriter, r *http.Request) (Fields, bool) {
	var f Fields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		httpx.RequestBodyError(w, r, err)
		return Fields{}, false
	}
	if validationErrors := httpx.ValidateStruct(f); len(validationErrors) > 0 {
		httpx.ValidationFailed(w, r, validationErrors)
		return Fields{}, false
	}
	return f, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.NotFound(w, r, "Todo not found")
		return
	}
	httpx.InternalError(w, r)
}

// List handles GET /todos
// @Summary List the caller's todos
// @Tags todos
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /todos [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.List(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, todos, map[string]any{"count": len(todos)})
}

// Get handles GET /todos/{todoID}
// @Summary Get a todo
// @Tags todos
// @Produce json
// @Security Bearer
// @Param todoID path int true "Todo ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /todos/{todoID} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := todoIDParam(r)
	if !ok {
		httpx.BadRequest(w, r, "Invalid todo ID")
		return
	}

	t, err := h.service.Get(r.Context(), httpx.UserIDFrom(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, t, nil)
}

// Create handles POST /todos
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body Fields true "Todo"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /todos [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeFields(w, r)
	if !ok {
		return
	}

	t, err := h.service.Create(r.Context(), httpx.UserIDFrom(r), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, t)
}

// Update handles PUT /todos/{todoID}
// @Summary Replace a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security Bearer
// @Param todoID path int true "Todo ID"
// @Param request body Fields true "Todo"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /todos/{todoID} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := todoIDParam(r)
	if !ok {
		httpx.BadRequest(w, r, "Invalid todo ID")
		return
	}
	f, ok := decodeFields(w, r)
	if !ok {
		return
	}

	t, err := h.service.Update(r.Context(), httpx.UserIDFrom(r), id, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, t, nil)
}

// Delete handles DELETE /todos/{todoID}
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security Bearer
// @Param todoID path int true "Todo ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /todos/{todoID} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := todoIDParam(r)
	if !ok {
		httpx.BadRequest(w, r, "Invalid todo ID")
		return
	}

	if err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONMessage(w, r, "Todo deleted")
}
