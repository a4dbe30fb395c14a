package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"shelfapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Param books_to_return query int false "Return only the first N books"
// @Param skip_book_id query string false "Leave this book out"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var q Query
	if raw := query.Get("books_to_return"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.ValidationFailed(w, r, []httpx.ErrorDetail{{
				Field:   "books_to_return",
				Message: "books_to_return must be a non-negative integer",
			}})
			return
		}
		q.Limit = n
	}
	if raw := query.Get("skip_book_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httpx.ValidationFailed(w, r, []httpx.ErrorDetail{{
				Field:   "skip_book_id",
				Message: "skip_book_id must be a valid UUID",
			}})
			return
		}
		q.SkipID = id
	}

	books, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"count": len(books)})
}

// Get handles GET /books/{bookID}
// @Summary Get a book
// @Tags books
// @Produce json
// @Param bookID path string true "Book UUID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{bookID} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Create handles POST /books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body Book true "Book"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req Book
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RequestBodyError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, created)
}

// Update handles PUT /books/{bookID}
// @Summary Replace a book
// @Tags books
// @Accept json
// @Produce json
// @Param bookID path string true "Book UUID"
// @Param request body Book true "Book"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{bookID} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	var req Book
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RequestBodyError(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, updated, nil)
}

// Delete handles DELETE /books/{bookID}
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param bookID path string true "Book UUID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{bookID} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	msg, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONMessage(w, r, msg)
}

func bookIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "bookID"))
	if err != nil {
		httpx.ValidationFailed(w, r, []httpx.ErrorDetail{{
			Field:   "book_id",
			Message: "book_id must be a valid UUID",
		}})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.ValidationFailed(w, r, verr.Details)
	case errors.Is(err, ErrNotFound):
		httpx.NotFound(w, r, "This book doesn't exist.")
	case errors.Is(err, ErrAlreadyExists):
		httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "A book with this id already exists", nil)
	default:
		httpx.InternalError(w, r)
	}
}
