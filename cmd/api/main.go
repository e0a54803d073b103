// @title HabitHero API
// @description API for habit-tracker app "HabitHero"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/habithero/internal/api"
	"github.com/limbo/habithero/internal/repository"
	"github.com/limbo/habithero/internal/service"
	"github.com/limbo/habithero/pkg/cleanup"
	"github.com/limbo/habithero/pkg/config"
	jwtservice "github.com/limbo/habithero/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	store, err := repository.NewStore(&repository.FSCfg{
		Dir: cfg.GetStringDefault("DATA_DIR", "./data"),
	})
	if err != nil {
		log.Fatal("opening store error: " + err.Error())
	}
	habitsRepo := repository.NewHabitsRepo(store)
	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepo(store)),
		HabitsService:   service.NewHabitsService(habitsRepo),
		ProgressService: service.NewProgressService(habitsRepo),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetStringDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
