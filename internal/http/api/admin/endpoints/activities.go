package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/http/api"
	"github.com/Playtura-App/playtura/internal/http/api/admin/packets"
	"github.com/Playtura-App/playtura/internal/model"
	"github.com/Playtura-App/playtura/internal/storage"
)

type ActivityController struct {
	store         db.Store
	storageSystem storage.Storage
}

func newActivityController(store db.Store, storageSystem storage.Storage) *ActivityController {
	return &ActivityController{store: store, storageSystem: storageSystem}
}

// ActivityModule mounts all authenticated /activities endpoints.
func ActivityModule(store db.Store, storageSystem storage.Storage) api.Module {
	ctl := newActivityController(store, storageSystem)
	return api.ModuleFunc(func(c *api.Controller) {
		// CRUD
		c.GET("/organizations/:id/activities", ctl.listActivities)
		c.POST("/organizations/:id/activities", ctl.createActivity)
		c.GET("/activities/:id", ctl.getActivity)
		c.PUT("/activities/:id", ctl.updateActivity)
		c.DELETE("/activities/:id", ctl.deleteActivity)
		// media
		c.POST("/activities/:id/image", ctl.uploadActivityImage)
		// pricing
		c.GET("/activities/:id/pricing", ctl.listPricingPlans)
		c.POST("/activities/:id/pricing", ctl.createPricingPlan)
		c.DELETE("/pricing/:id", ctl.deletePricingPlan)
	})
}

// loads the activity from the :id param and checks the caller owns its
// organization.
func (a *ActivityController) ownedActivity(ctx *gin.Context, user *model.User) (model.Activity, *api.APIError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("id_raw", ctx.Param("id")).Msg("invalid activity id in request")
		return model.Activity{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return a.ownedActivityByID(id, user)
}

// the ownership walk itself; also guards sub-resources that carry their own
// id but belong to an activity.
func (a *ActivityController) ownedActivityByID(id uuid.UUID, user *model.User) (model.Activity, *api.APIError) {
	activity, err := a.store.GetActivityByID(id)
	if err != nil {
		return model.Activity{}, &api.APIError{Code: http.StatusNotFound, Message: "activity not found"}
	}
	org, err := a.store.GetOrganizationByID(activity.OrganizationID)
	if err != nil {
		return model.Activity{}, &api.APIError{Code: http.StatusNotFound, Message: "organization not found"}
	}
	if org.CreatedBy != user.ID {
		return model.Activity{}, &api.APIError{Code: http.StatusForbidden, Message: "not your activity"}
	}
	return activity, nil
}

func (a *ActivityController) ownedOrganizationParam(ctx *gin.Context, user *model.User) (model.Organization, *api.APIError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return model.Organization{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	org, err := a.store.GetOrganizationByID(id)
	if err != nil {
		return model.Organization{}, &api.APIError{Code: http.StatusNotFound, Message: "organization not found"}
	}
	if org.CreatedBy != user.ID {
		return model.Organization{}, &api.APIError{Code: http.StatusForbidden, Message: "not your organization"}
	}
	return org, nil
}

// GET /api/admin/organizations/:id/activities
func (a *ActivityController) listActivities(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := a.ownedOrganizationParam(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	all, err := a.store.ListActivities(org.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	out := make([]packets.ActivityResponse, 0, len(all))
	for _, act := range all {
		out = append(out, packets.NewActivityResponse(act))
	}
	return out, nil
}

// POST /api/admin/organizations/:id/activities
func (a *ActivityController) createActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := a.ownedOrganizationParam(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.MinAge > request.MaxAge {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "min_age above max_age"}
	}
	locationID, err := uuid.Parse(request.LocationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid location_id"}
	}

	activity, err := a.store.CreateActivity(org.ID, locationID, request.Name, request.Description, request.Category, request.MinAge, request.MaxAge)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create activity"}
	}
	return packets.NewActivityResponse(activity), nil
}

// GET /api/admin/activities/:id
func (a *ActivityController) getActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := a.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.NewActivityResponse(activity), nil
}

// PUT /api/admin/activities/:id
func (a *ActivityController) updateActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := a.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := a.store.UpdateActivity(activity.ID, request.Name, request.Description, request.Category, request.MinAge, request.MaxAge); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update activity"}
	}

	updated, err := a.store.GetActivityByID(activity.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated activity"}
	}
	return packets.NewActivityResponse(updated), nil
}

// DELETE /api/admin/activities/:id
func (a *ActivityController) deleteActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := a.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := a.store.DeleteActivity(activity.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete activity"}
	}
	return gin.H{"status": "deleted"}, nil
}

// POST /api/admin/activities/:id/image
func (a *ActivityController) uploadActivityImage(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := a.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing image file"}
	}

	url, err := a.storageSystem.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("activity_id", activity.ID.String()).Msg("image upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store image"}
	}

	if err := a.store.SetActivityImage(activity.ID, url); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save image url"}
	}
	return gin.H{"image_url": url}, nil
}

// GET /api/admin/activities/:id/pricing
func (a *ActivityController) listPricingPlans(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := a.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	all, err := a.store.ListPricingPlans(activity.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	out := make([]packets.PricingPlanResponse, 0, len(all))
	for _, p := range all {
		out = append(out, packets.NewPricingPlanResponse(p))
	}
	return out, nil
}

// POST /api/admin/activities/:id/pricing
func (a *ActivityController) createPricingPlan(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	activity, apiErr := a.ownedActivity(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.CreatePricingPlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	period := model.PricingPeriod(request.Period)
	if err := period.Valid(); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	plan, err := a.store.CreatePricingPlan(activity.ID, request.Name, request.PriceCents, request.Currency, period)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create pricing plan"}
	}
	return packets.NewPricingPlanResponse(plan), nil
}

// DELETE /api/admin/pricing/:id
func (a *ActivityController) deletePricingPlan(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	plan, err := a.store.GetPricingPlanByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pricing plan not found"}
	}
	if _, apiErr := a.ownedActivityByID(plan.ActivityID, user); apiErr != nil {
		return nil, apiErr
	}
	if err := a.store.DeletePricingPlan(plan.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete pricing plan"}
	}
	return gin.H{"status": "deleted"}, nil
}
