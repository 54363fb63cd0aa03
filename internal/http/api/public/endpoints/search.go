package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Playtura-App/playtura/internal/db"
	"github.com/Playtura-App/playtura/internal/http/api"
	"github.com/Playtura-App/playtura/internal/http/api/public/packets"
	"github.com/Playtura-App/playtura/internal/search"
)

type SearchController struct {
	store db.Store
}

func newSearchController(store db.Store) *SearchController {
	return &SearchController{store: store}
}

// SearchModule mounts the public activity search endpoint.
func SearchModule(store db.Store) api.Module {
	ctl := newSearchController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/activities/search", ctl.searchActivities)
	})
}

// GET /api/public/activities/search
func (s *SearchController) searchActivities(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SearchActivitiesRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	cursor, err := search.ParseCursor(request.Cursor)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	filters := search.Filters{
		StartMinutesUTC: request.StartMinutesUTC,
		EndMinutesUTC:   request.EndMinutesUTC,
		DayOfWeekUTC:    request.DayOfWeekUTC,
		AgeMin:          request.AgeMin,
		AgeMax:          request.AgeMax,
		Term:            request.Term,
		Category:        request.Category,
		City:            request.City,
		Languages:       request.Languages,
		Limit:           request.Limit,
		Cursor:          cursor,
	}

	rows, err := s.store.SearchActivities(filters)
	if err != nil {
		if errors.Is(err, search.ErrInvalidRange) || errors.Is(err, search.ErrInvalidLimit) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "search failed"}
	}

	response := packets.SearchResponse{Items: make([]packets.SearchResultResponse, 0, len(rows))}
	for _, r := range rows {
		response.Items = append(response.Items, packets.NewSearchResultResponse(r))
	}
	// A short page is the last one; only a full page earns a resume token.
	if len(rows) == filters.PageSize() {
		response.NextCursor = search.EncodeCursor(rows[len(rows)-1].SortKey())
	}

	return response, nil
}
