package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/http/api"
	"github.com/Playtura-App/playtura/internal/http/api/admin/packets"
	"github.com/Playtura-App/playtura/internal/model"
)

type ScheduleController struct {
	store db.Store
}

func newScheduleController(store db.Store) *ScheduleController {
	return &ScheduleController{store: store}
}

// ScheduleModule mounts all authenticated schedule-entry endpoints.
func ScheduleModule(store db.Store) api.Module {
	ctl := newScheduleController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/activities/:id/schedule", ctl.listScheduleEntries)
		c.POST("/activities/:id/schedule", ctl.createScheduleEntry)
		c.DELETE("/schedule/:id", ctl.deleteScheduleEntry)
	})
}

// reuses the activity ownership walk from the activity controller.
func (s *ScheduleController) ownedActivity(ctx *gin.Context, user *model.User) (model.Activity, *api.APIError) {
	return (&ActivityController{store: s.store}).ownedActivity(ctx, user)
}

// GET /api/admin/activities/:id/schedule
func (s *ScheduleController) listScheduleEntries(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := s.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	all, err := s.store.ListScheduleEntries(activity.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	out := make([]packets.ScheduleEntryResponse, 0, len(all))
	for _, e := range all {
		out = append(out, packets.NewScheduleEntryResponse(e))
	}
	return out, nil
}

// POST /api/admin/activities/:id/schedule
func (s *ScheduleController) createScheduleEntry(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := s.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.CreateScheduleEntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	entry := model.ScheduleEntry{
		ActivityID:      activity.ID,
		ScheduleType:    model.ScheduleType(request.ScheduleType),
		DayOfWeekUTC:    request.DayOfWeekUTC,
		DayOfMonth:      request.DayOfMonth,
		StartAtUTC:      request.StartAtUTC,
		EndAtUTC:        request.EndAtUTC,
		StartMinutesUTC: request.StartMinutesUTC,
		EndMinutesUTC:   request.EndMinutesUTC,
		Languages:       request.Languages,
	}

	// Field/type mismatches and a bad minute window are the caller's fault.
	if err := db.ValidateScheduleEntry(entry); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	created, err := s.store.CreateScheduleEntry(entry)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create schedule entry"}
	}
	return packets.NewScheduleEntryResponse(created), nil
}

// DELETE /api/admin/schedule/:id
func (s *ScheduleController) deleteScheduleEntry(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	entry, err := s.store.GetScheduleEntryByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule entry not found"}
	}
	if _, apiErr := (&ActivityController{store: s.store}).ownedActivityByID(entry.ActivityID, user); apiErr != nil {
		return nil, apiErr
	}
	if err := s.store.DeleteScheduleEntry(entry.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete schedule entry"}
	}
	return gin.H{"status": "deleted"}, nil
}
