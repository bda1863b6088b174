package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type TripController struct {
	plannerService services.PlannerServiceInterface
}

func NewTripController(plannerService services.PlannerServiceInterface) *TripController {
	return &TripController{
		plannerService: plannerService,
	}
}

// ListTrips godoc
// @Summary List saved trips
// @Description Summaries of the caller's trips, most recent first
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripSummaryResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.plannerService.History(c.Request.Context(), c.GetString(middleware.ContextSessionID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Trips fetched successfully"
	if len(trips) == 0 {
		message = "No trips saved yet. Generate one and save it."
	}
	utils.RespondSuccess(c, trips, message)
}

// GetTrip godoc
// @Summary Open a saved trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.plannerService.OpenTrip(c.Request.Context(), c.GetString(middleware.ContextSessionID), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Opened trip: "+trip.City+", "+trip.Country)
}

// DownloadTrip godoc
// @Summary Download a saved trip as PDF
// @Tags Trips
// @Produce application/pdf
// @Param tripId path string true "Trip ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/pdf [get]
func (t *TripController) DownloadTrip(c *gin.Context) {
	doc, err := t.plannerService.ExportTrip(c.Request.Context(), c.GetString(middleware.ContextSessionID), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sendDocument(c, doc)
}
