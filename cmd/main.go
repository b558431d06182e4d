package main

import (
	"os"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/controllers"
	"github.com/varad16/fittrack-pro/routes"
	"github.com/varad16/fittrack-pro/services"
	"github.com/varad16/fittrack-pro/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.WithError(err).Warn("push notifications disabled")
	}
	services.InitAlertDeps(config.DB, hub, push)

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.WithError(err).Warn("food photo recognition disabled")
	}
	foodSvc := services.NewFoodService(services.NewFoodAPIService(), rek)
	mealSvc := services.NewMealService(foodSvc)

	ctl := routes.Controllers{
		Food:      controllers.NewFoodController(foodSvc),
		Meal:      controllers.NewMealController(mealSvc),
		Challenge: controllers.NewChallengeController(services.NewChallengeService(config.DB)),
		Goal:      controllers.NewGoalController(mealSvc),
		Analytics: controllers.NewAnalyticsController(services.NewAnalyticsService(config.DB, mealSvc)),
		Plan:      controllers.NewPlanController(services.NewPlanService()),
		Device:    controllers.NewDeviceController(push),
		Realtime:  controllers.NewRealtimeController(hub),
	}

	r := routes.SetupRouter(ctl)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	log.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
