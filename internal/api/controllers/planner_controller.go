package controllers

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// Defaults godoc
// @Summary Planner form defaults
// @Tags Planner
// @Produce json
// @Success 200 {object} response_models.PlannerDefaultsResponse
// @Router /planner/defaults [get]
func (p *PlannerController) Defaults(c *gin.Context) {
	utils.RespondSuccess(c, p.plannerService.Defaults(), "Defaults fetched successfully")
}

// Interests godoc
// @Summary Interest catalogue
// @Tags Planner
// @Produce json
// @Success 200 {array} string
// @Router /planner/interests [get]
func (p *PlannerController) Interests(c *gin.Context) {
	utils.RespondSuccess(c, p.plannerService.Interests(), "Interests fetched successfully")
}

// Session godoc
// @Summary Current planner session
// @Description State of the session and the last generated plan, if any
// @Tags Planner
// @Produce json
// @Success 200 {object} response_models.SessionResponse
// @Security BearerAuth
// @Router /planner/session [get]
func (p *PlannerController) Session(c *gin.Context) {
	resp, err := p.plannerService.Session(c.GetString(middleware.ContextSessionID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Session fetched successfully")
}

// Generate godoc
// @Summary Generate a travel plan
// @Description Build the prompt, call the text service and render sections, map location and recommendations
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.GenerationRequest true "Trip parameters"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /planner/generate [post]
func (p *PlannerController) Generate(c *gin.Context) {
	var req request_models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.Generate(c.Request.Context(), c.GetString(middleware.ContextSessionID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, fmt.Sprintf("Travel Plan for %s, %s Ready!", req.City, req.Country))
}

// Save godoc
// @Summary Save the current plan
// @Description Every call stores a new trip record
// @Tags Planner
// @Produce json
// @Success 200 {object} response_models.SaveTripResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /planner/save [post]
func (p *PlannerController) Save(c *gin.Context) {
	resp, err := p.plannerService.Save(c.Request.Context(), c.GetString(middleware.ContextSessionID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Saved! Trip ID: "+resp.TripID)
}

// Export godoc
// @Summary Download the current plan as PDF
// @Tags Planner
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /planner/export [get]
func (p *PlannerController) Export(c *gin.Context) {
	doc, err := p.plannerService.Export(c.GetString(middleware.ContextSessionID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sendDocument(c, doc)
}

func sendDocument(c *gin.Context, doc *services.PlanDocument) {
	// city names are user input; FormatMediaType quotes or RFC 2231 encodes them
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
