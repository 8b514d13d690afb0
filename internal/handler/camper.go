package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lakemont/campsignup/internal/model"
	"github.com/lakemont/campsignup/internal/render"
)

// CamperService defines the camper operations the handler depends on
type CamperService interface {
	ListCampers(ctx context.Context) ([]*model.Camper, error)
	GetCamper(ctx context.Context, id int64) (*model.Camper, error)
	CreateCamper(ctx context.Context, req *model.CreateCamperRequest) (*model.Camper, error)
	UpdateCamper(ctx context.Context, id int64, req *model.UpdateCamperRequest) (*model.Camper, error)
}

// CamperHandler handles camper endpoints
type CamperHandler struct {
	camperService CamperService
}

// NewCamperHandler creates a new camper handler
func NewCamperHandler(camperService CamperService) *CamperHandler {
	return &CamperHandler{camperService: camperService}
}

// List handles GET /campers - list all campers, scalar fields only
func (h *CamperHandler) List(w http.ResponseWriter, r *http.Request) {
	campers, err := h.camperService.ListCampers(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, render.RenderList(campers, render.ScalarOnly))
}

// Create handles POST /campers
func (h *CamperHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCamperRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	camper, err := h.camperService.CreateCamper(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, render.Render(camper, render.CamperDetail))
}

// GetByID handles GET /campers/{id}
func (h *CamperHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, model.NewNotFoundError("camper"))
		return
	}

	camper, err := h.camperService.GetCamper(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, render.Render(camper, render.CamperDetail))
}

// Update handles PATCH /campers/{id} - partial update
func (h *CamperHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, model.NewNotFoundError("camper"))
		return
	}

	var req model.UpdateCamperRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	camper, err := h.camperService.UpdateCamper(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, render.Render(camper, render.CamperDetail))
}

// pathID parses the {id} path segment. A non-numeric id can never reference
// a record, so callers treat it as not found rather than bad request.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
