// routes/routes.go
package routes

import (
	"healthtrack/controllers"
	"healthtrack/middlewares"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRouter wires services, controllers and route groups onto a
// fresh engine. Everything is scoped to the authenticated user.
func SetupRouter(db *gorm.DB, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))

	profile := controllers.NewProfileController(services.NewProfileService(db))
	daily := controllers.NewDailyController(services.NewDailyEntryService(db))
	foods := controllers.NewFoodController(services.NewFoodEntryService(db))
	exercises := controllers.NewExerciseController(services.NewExerciseEntryService(db))
	injections := controllers.NewInjectionController(services.NewInjectionService(db))
	nirvana := controllers.NewNirvanaController(services.NewNirvanaService(db))
	templates := controllers.NewTemplateController(services.NewTemplateService(db))
	milestones := controllers.NewMilestoneController(services.NewMilestoneService(db))
	weekly := controllers.NewWeeklyController(services.NewWeeklyService(db))
	analytics := controllers.NewAnalyticsController(services.NewAnalyticsService(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", profile.Get)
		api.POST("/profile", profile.Create)
		api.PUT("/profile", profile.Update)
		api.DELETE("/profile", profile.Delete)

		day := api.Group("/daily/:date")
		{
			day.GET("", daily.GetByDate)
			day.PUT("/weight", daily.LogWeight)
			day.PUT("/mit/:slot", daily.SetMITTask)
			day.POST("/mit/:slot/toggle", daily.ToggleMITTask)
			day.POST("/deep-work/toggle", daily.ToggleDeepWork)
			day.PUT("/notes", daily.SetNotes)

			day.GET("/foods", foods.List)
			day.POST("/foods", foods.Add)
			day.GET("/exercises", exercises.List)
			day.POST("/exercises", exercises.Add)
		}

		api.PUT("/foods/:id", foods.Update)
		api.DELETE("/foods/:id", foods.Delete)
		api.PUT("/exercises/:id", exercises.Update)
		api.DELETE("/exercises/:id", exercises.Delete)

		api.GET("/compounds", injections.ListCompounds)
		api.POST("/compounds", injections.CreateCompound)
		api.PUT("/compounds/:id", injections.UpdateCompound)
		api.DELETE("/compounds/:id", injections.DeleteCompound)

		api.GET("/injections", injections.ListInjections)
		api.POST("/injections", injections.LogInjection)
		api.DELETE("/injections/:id", injections.DeleteInjection)

		api.GET("/nirvana", nirvana.List)
		api.POST("/nirvana", nirvana.Create)
		api.PUT("/nirvana/:id", nirvana.Update)
		api.DELETE("/nirvana/:id", nirvana.Delete)

		api.GET("/templates", templates.List)
		api.POST("/templates", templates.Create)
		api.PUT("/templates/:id", templates.Update)
		api.DELETE("/templates/:id", templates.Delete)
		api.POST("/templates/:id/use", templates.MarkUsed)

		api.GET("/milestones", milestones.List)
		api.POST("/milestones", milestones.Create)
		api.PUT("/milestones/:id", milestones.Update)
		api.DELETE("/milestones/:id", milestones.Delete)
		api.POST("/milestones/:id/complete", milestones.Complete)

		api.GET("/weekly", weekly.Get)
		api.PUT("/weekly", weekly.Upsert)

		stats := api.Group("/analytics")
		{
			stats.GET("/overview", analytics.GetOverview)
			stats.GET("/weight", analytics.GetWeightTrend)
			stats.GET("/calories", analytics.GetCalorieBalance)
			stats.GET("/macros", analytics.GetMacroTrend)
			stats.GET("/workouts", analytics.GetWorkoutSummary)
			stats.GET("/injections", analytics.GetInjectionAdherence)
			stats.GET("/mits", analytics.GetMITCompletion)
			stats.GET("/nirvana", analytics.GetNirvanaSessions)
			stats.GET("/weekly", analytics.GetWeeklyObjectives)
		}
	}

	return r
}
