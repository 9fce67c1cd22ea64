package main

import (
	"log"

	"github.com/limbo/habinook/internal/api"
	"github.com/limbo/habinook/internal/repository"
	"github.com/limbo/habinook/internal/service"
	"github.com/limbo/habinook/pkg/config"
	jwtservice "github.com/limbo/habinook/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	categoriesRepo := repository.NewCategoriesRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	frequenciesRepo := repository.NewFrequenciesRepo(&dbCfg)
	logsRepo := repository.NewHabitLogsRepo(&dbCfg)
	streaksRepo := repository.NewHabitStreaksRepo(&dbCfg)

	streakService := service.NewStreaksService(habitsRepo, frequenciesRepo, logsRepo, streaksRepo)
	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo),
		HabitsService:    service.NewHabitsService(habitsRepo),
		CategoryService:  service.NewCategoriesService(categoriesRepo),
		GoalService:      service.NewGoalsService(habitsRepo, goalsRepo),
		FrequencyService: service.NewFrequenciesService(habitsRepo, frequenciesRepo),
		LogService:       service.NewHabitLogsService(habitsRepo, logsRepo, streakService),
		StreakService:    streakService,
		TodayService:     service.NewTodayService(habitsRepo, frequenciesRepo, logsRepo),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
