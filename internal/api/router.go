package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tripplanner/internal/api/controllers"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type Controllers struct {
	Accounts *controllers.AccountController
	Planner  *controllers.PlannerController
	Trips    *controllers.TripController
}

func NewRouter(ctrl Controllers, tokens *utils.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, ctrl, middleware.JWTAuthMiddleware(tokens))
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers, auth gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", ctrl.Accounts.Register)
	accountGroup.POST("/login", ctrl.Accounts.Login)
	accountGroup.POST("/logout", auth, ctrl.Accounts.Logout)

	plannerGroup := r.Group("/planner")
	plannerGroup.GET("/defaults", ctrl.Planner.Defaults)
	plannerGroup.GET("/interests", ctrl.Planner.Interests)
	plannerGroup.GET("/session", auth, ctrl.Planner.Session)
	plannerGroup.POST("/generate", auth, ctrl.Planner.Generate)
	plannerGroup.POST("/save", auth, ctrl.Planner.Save)
	plannerGroup.GET("/export", auth, ctrl.Planner.Export)

	tripsGroup := r.Group("/trips", auth)
	tripsGroup.GET("", ctrl.Trips.ListTrips)
	tripsGroup.GET("/:tripId", ctrl.Trips.GetTrip)
	tripsGroup.GET("/:tripId/pdf", ctrl.Trips.DownloadTrip)
}
