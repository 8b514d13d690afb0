package handler

import (
	"context"
	"net/http"

	"github.com/lakemont/campsignup/internal/model"
	"github.com/lakemont/campsignup/internal/render"
)

// SignupService defines the signup operations the handler depends on
type SignupService interface {
	CreateSignup(ctx context.Context, req *model.CreateSignupRequest) (*model.Signup, error)
}

// SignupHandler handles signup endpoints
type SignupHandler struct {
	signupService SignupService
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(signupService SignupService) *SignupHandler {
	return &SignupHandler{signupService: signupService}
}

// Create handles POST /signups. The response embeds the linked camper and
// activity so the client can confirm the booking without extra lookups.
func (h *SignupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	signup, err := h.signupService.CreateSignup(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, render.Render(signup, render.SignupDetail))
}
