package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"shelfapi/internal/httpx"
	"shelfapi/internal/platform/crypto"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type registerReq struct {
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Password  string  `json:"password" validate:"required,password_strength"`
}

// RegisterUser handles POST /create/user
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body registerReq true "Registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /create/user [post]
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RequestBodyError(w, r, err)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.ValidationFailed(w, r, validationErrors)
		return
	}

	newUser, err := h.service.Register(r.Context(), RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Username or email already exists", nil)
			return
		}
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			httpx.ValidationFailed(w, r, []httpx.ErrorDetail{{Field: "password", Message: err.Error()}})
			return
		}
		httpx.InternalError(w, r)
		return
	}

	httpx.JSONSuccessCreated(w, r, newUser)
}

// GetCurrentUser handles GET /me
// @Summary Get current user
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /me [get]
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == 0 {
		httpx.Unauthorized(w, r)
		return
	}

	u, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		httpx.Unauthorized(w, r)
		return
	}

	httpx.JSONSuccess(w, r, u, nil)
}
