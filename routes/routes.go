package routes

import (
	"github.com/varad16/fittrack-pro/controllers"
	"github.com/varad16/fittrack-pro/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers bundles the stateful controllers built in main.
type Controllers struct {
	Food      *controllers.FoodController
	Meal      *controllers.MealController
	Challenge *controllers.ChallengeController
	Goal      *controllers.GoalController
	Analytics *controllers.AnalyticsController
	Plan      *controllers.PlanController
	Device    *controllers.DeviceController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Public activity share links
	r.GET("/shared/activities/:shareId", controllers.GetSharedActivity)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/avatar", controllers.UploadAvatar)

		user.POST("/follow/:id", controllers.Follow)
		user.DELETE("/follow/:id", controllers.Unfollow)
		user.GET("/followers", controllers.Followers)
		user.GET("/following", controllers.Following)
		user.GET("/feed", controllers.Feed)

		user.POST("/devices", ctl.Device.Register)
	}

	// Food catalog
	food := r.Group("/foods")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", ctl.Food.Search)
		food.GET("/:id", ctl.Food.Get)
		food.POST("/custom", ctl.Food.CreateCustom)
		food.POST("/photo", ctl.Food.SuggestFromPhoto)
	}

	// Meals and nutrition
	meal := r.Group("/meals")
	meal.Use(middlewares.AuthMiddleware())
	{
		meal.POST("", ctl.Meal.Add)
		meal.GET("", ctl.Meal.List)
		meal.GET("/:id", ctl.Meal.Get)
		meal.PUT("/:id", ctl.Meal.Update)
		meal.DELETE("/:id", ctl.Meal.Delete)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/daily", ctl.Meal.DailyNutrition)
		nutrition.GET("/range", ctl.Meal.NutritionRange)
	}

	// Workouts
	workout := r.Group("/workouts")
	workout.Use(middlewares.AuthMiddleware())
	{
		workout.POST("", controllers.AddWorkout)
		workout.GET("", controllers.ListWorkouts)
		workout.PUT("/:id", controllers.UpdateWorkout)
		workout.DELETE("/:id", controllers.DeleteWorkout)
	}

	// Weight and body measurements
	weight := r.Group("/weight")
	weight.Use(middlewares.AuthMiddleware())
	{
		weight.POST("", controllers.LogWeight)
		weight.GET("", controllers.ListWeightLogs)
		weight.DELETE("/:id", controllers.DeleteWeightLog)
		weight.GET("/trend", controllers.WeightTrend)
	}

	body := r.Group("/body")
	body.Use(middlewares.AuthMiddleware())
	{
		body.POST("/measurements", controllers.LogMeasurement)
		body.GET("/measurements", controllers.ListMeasurements)
		body.DELETE("/measurements/:id", controllers.DeleteMeasurement)
		body.GET("/stats", controllers.BodyStats)
	}

	// GPS activities and daily steps
	activity := r.Group("/activities")
	activity.Use(middlewares.AuthMiddleware())
	{
		activity.POST("", controllers.RecordActivity)
		activity.GET("", controllers.ListActivities)
		activity.GET("/:id", controllers.GetActivity)
		activity.DELETE("/:id", controllers.DeleteActivity)
	}

	daily := r.Group("/daily-activity")
	daily.Use(middlewares.AuthMiddleware())
	{
		daily.POST("", controllers.LogDailyActivity)
		daily.GET("/steps", controllers.StepSeries)
	}

	// Challenges
	challenge := r.Group("/challenges")
	challenge.Use(middlewares.AuthMiddleware())
	{
		challenge.POST("", ctl.Challenge.Create)
		challenge.GET("", ctl.Challenge.List)
		challenge.GET("/:id", ctl.Challenge.Get)
		challenge.POST("/:id/join", ctl.Challenge.Join)
		challenge.DELETE("/:id/leave", ctl.Challenge.Leave)
		challenge.GET("/:id/leaderboard", ctl.Challenge.Leaderboard)
	}

	// Goals and dashboard
	goal := r.Group("/goals")
	goal.Use(middlewares.AuthMiddleware())
	{
		goal.PUT("", ctl.Goal.Upsert)
		goal.GET("", ctl.Goal.Get)
	}
	r.GET("/dashboard", middlewares.AuthMiddleware(), ctl.Goal.Dashboard)

	// Analytics
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/summary", ctl.Analytics.Summary)
		analytics.GET("/weekly", ctl.Analytics.WeeklyOverview)
		analytics.GET("/charts/calories", ctl.Analytics.CalorieChart)
		analytics.GET("/charts/distance", ctl.Analytics.ActivityChart)
		analytics.GET("/charts/workouts", ctl.Analytics.WorkoutChart)
	}

	// AI coach
	coach := r.Group("/coach")
	coach.Use(middlewares.AuthMiddleware())
	{
		coach.POST("/meal-plan", ctl.Plan.MealPlan)
		coach.POST("/workout-plan", ctl.Plan.WorkoutPlan)
		coach.POST("/chat", ctl.Plan.Chat)
	}

	// Notifications
	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
		alerts.PUT("/:id/read", controllers.MarkAlertRead)
	}

	r.GET("/ws/alerts", middlewares.AuthMiddleware(), ctl.Realtime.AlertsWS)

	return r
}
