package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alcyxob/workout-planner/internal/observability"
	"alcyxob/workout-planner/internal/service"
)

// Services bundles everything the router needs. ExportService may be nil when
// no CalDAV target is configured.
type Services struct {
	Auth    service.AuthService
	Planner service.PlannerService
	Import  service.ImportService
	Custom  service.CustomWorkoutService
	TriClub service.TriClubService
	Target  service.TargetService
	Weather service.WeatherService
	Export  service.ExportService
}

// SetupRoutes wires all handlers onto the router.
func SetupRoutes(router *gin.Engine, jwtSecret string, svcs Services) {
	authHandler := NewAuthHandler(svcs.Auth)
	workoutHandler := NewWorkoutHandler(svcs.Planner, svcs.Import)
	selectionHandler := NewSelectionHandler(svcs.Planner)
	customHandler := NewCustomWorkoutHandler(svcs.Custom)
	triClubHandler := NewTriClubHandler(svcs.TriClub)
	calendarHandler := NewCalendarHandler(svcs.Planner, svcs.TriClub, svcs.Target)
	weatherHandler := NewWeatherHandler(svcs.Weather)
	exportHandler := NewExportHandler(svcs.Export)

	router.Use(observability.GinMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("/import", workoutHandler.ImportCSV)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id/selection", selectionHandler.UpdateSelection)
			workoutGroup.DELETE("/:id/selection", selectionHandler.DeleteSelection)
		}

		customGroup := protected.Group("/custom-workouts")
		{
			customGroup.POST("", customHandler.Create)
			customGroup.GET("", customHandler.List)
			customGroup.GET("/:id", customHandler.Get)
			customGroup.PUT("/:id", customHandler.Update)
			customGroup.DELETE("/:id", customHandler.Delete)
		}

		triClubGroup := protected.Group("/triclub")
		{
			triClubGroup.GET("/schedule", triClubHandler.GetSchedule)
			triClubGroup.PUT("/schedule", triClubHandler.PutSchedule)
			triClubGroup.GET("/day/:date", triClubHandler.GetDay)
		}

		protected.GET("/calendar/:view/:date", calendarHandler.GetView)
		protected.GET("/targets", func(c *gin.Context) {
			targets, err := svcs.Target.WeeklyTargets(c.Request.Context())
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to load weekly targets")
				return
			}
			c.JSON(http.StatusOK, targets)
		})
		protected.GET("/weather/:date/:slot", weatherHandler.GetSlot)
		protected.POST("/export/calendar", exportHandler.Export)
		protected.GET("/stats", workoutHandler.Stats)
	}
}
