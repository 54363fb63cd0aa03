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
)

type OrganizationController struct {
	store db.Store
}

func newOrganizationController(store db.Store) *OrganizationController {
	return &OrganizationController{store: store}
}

// OrganizationModule mounts all authenticated /organizations endpoints.
func OrganizationModule(store db.Store) api.Module {
	ctl := newOrganizationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		// CRUD
		c.GET("/organizations", ctl.listOrganizations)
		c.POST("/organizations", ctl.createOrganization)
		c.GET("/organizations/:id", ctl.getOrganization)
		c.PUT("/organizations/:id", ctl.updateOrganization)
		c.DELETE("/organizations/:id", ctl.deleteOrganization)
		// locations
		c.GET("/organizations/:id/locations", ctl.listLocations)
		c.POST("/organizations/:id/locations", ctl.createLocation)
		c.DELETE("/organizations/:id/locations/:lid", ctl.deleteLocation)
	})
}

// loads the organization from the :id param and checks the caller owns it.
func (o *OrganizationController) ownedOrganization(ctx *gin.Context, user *model.User) (model.Organization, *api.APIError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("id_raw", ctx.Param("id")).Msg("invalid organization id in request")
		return model.Organization{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	org, err := o.store.GetOrganizationByID(id)
	if err != nil {
		return model.Organization{}, &api.APIError{Code: http.StatusNotFound, Message: "organization not found"}
	}
	if org.CreatedBy != user.ID {
		return model.Organization{}, &api.APIError{Code: http.StatusForbidden, Message: "not your organization"}
	}
	return org, nil
}

// GET /api/admin/organizations
func (o *OrganizationController) listOrganizations(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := o.store.ListOrganizations(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	out := make([]packets.OrganizationResponse, 0, len(all))
	for _, org := range all {
		out = append(out, packets.NewOrganizationResponse(org))
	}
	return out, nil
}

// POST /api/admin/organizations
func (o *OrganizationController) createOrganization(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateOrganizationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	org, err := o.store.CreateOrganization(request.Name, request.Description, request.ContactEmail, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create organization"}
	}
	return packets.NewOrganizationResponse(org), nil
}

// GET /api/admin/organizations/:id
func (o *OrganizationController) getOrganization(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := o.ownedOrganization(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.NewOrganizationResponse(org), nil
}

// PUT /api/admin/organizations/:id
func (o *OrganizationController) updateOrganization(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := o.ownedOrganization(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateOrganizationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := o.store.UpdateOrganization(org.ID, request.Name, request.Description, request.ContactEmail); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update organization"}
	}

	updated, err := o.store.GetOrganizationByID(org.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated organization"}
	}
	return packets.NewOrganizationResponse(updated), nil
}

// DELETE /api/admin/organizations/:id
func (o *OrganizationController) deleteOrganization(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := o.ownedOrganization(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := o.store.DeleteOrganization(org.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete organization"}
	}
	return gin.H{"status": "deleted"}, nil
}

// GET /api/admin/organizations/:id/locations
func (o *OrganizationController) listLocations(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := o.ownedOrganization(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	all, err := o.store.ListLocations(org.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	out := make([]packets.LocationResponse, 0, len(all))
	for _, l := range all {
		out = append(out, packets.NewLocationResponse(l))
	}
	return out, nil
}

// POST /api/admin/organizations/:id/locations
func (o *OrganizationController) createLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := o.ownedOrganization(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	loc, err := o.store.CreateLocation(org.ID, request.Name, request.Address, request.City)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create location"}
	}
	return packets.NewLocationResponse(loc), nil
}

// DELETE /api/admin/organizations/:id/locations/:lid
func (o *OrganizationController) deleteLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	org, apiErr := o.ownedOrganization(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	lid, err := uuid.Parse(ctx.Param("lid"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid location id"}
	}
	loc, err := o.store.GetLocationByID(lid)
	if err != nil || loc.OrganizationID != org.ID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
	}

	if err := o.store.DeleteLocation(loc.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete location"}
	}
	return gin.H{"status": "deleted"}, nil
}
