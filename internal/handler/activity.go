package handler

import (
	"context"
	"net/http"

	"github.com/lakemont/campsignup/internal/model"
	"github.com/lakemont/campsignup/internal/render"
)

// ActivityService defines the activity operations the handler depends on
type ActivityService interface {
	ListActivities(ctx context.Context) ([]*model.Activity, error)
	CreateActivity(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
}

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	activityService ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles GET /activities - list all activities, scalar fields only
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.ListActivities(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, render.RenderList(activities, render.ScalarOnly))
}

// Create handles POST /activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateActivityRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	activity, err := h.activityService.CreateActivity(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, render.Render(activity, render.ScalarOnly))
}

// Delete handles DELETE /activities/{id} - removes the activity and its signups
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, model.NewNotFoundError("activity"))
		return
	}

	if err := h.activityService.DeleteActivity(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
