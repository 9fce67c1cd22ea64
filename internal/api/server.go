package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/habinook/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	habitService     service.HabitsServiceI
	categoryService  service.CategoriesServiceI
	goalService      service.GoalsServiceI
	frequencyService service.FrequenciesServiceI
	logService       service.HabitLogsServiceI
	streakService    service.StreaksServiceI
	todayService     service.TodayServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	HabitsService    service.HabitsServiceI
	CategoryService  service.CategoriesServiceI
	GoalService      service.GoalsServiceI
	FrequencyService service.FrequenciesServiceI
	LogService       service.HabitLogsServiceI
	StreakService    service.StreaksServiceI
	TodayService     service.TodayServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		habitService:     servicesOptions.HabitsService,
		categoryService:  servicesOptions.CategoryService,
		goalService:      servicesOptions.GoalService,
		frequencyService: servicesOptions.FrequencyService,
		logService:       servicesOptions.LogService,
		streakService:    servicesOptions.StreakService,
		todayService:     servicesOptions.TodayService,
		jwtService:       servicesOptions.JwtService,
	}
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})
	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Route("/habits", func(r chi.Router) {
			r.Post("/", s.CreateHabit)
			r.Get("/", s.GetHabits)
			r.Delete("/{id}", s.DeleteHabit)
			r.Post("/{id}/frequencies", s.CreateFrequency)
			r.Get("/{id}/frequencies", s.GetFrequencies)
			r.Get("/{id}/logs", s.GetLogs)
			r.Get("/{id}/streaks", s.GetStreaks)
			r.Post("/{id}/goals", s.CreateGoal)
			r.Get("/{id}/goals", s.GetGoals)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", s.CreateCategory)
			r.Get("/", s.GetCategories)
			r.Patch("/{id}", s.UpdateCategory)
			r.Delete("/{id}", s.DeleteCategory)
		})
		r.Route("/goals", func(r chi.Router) {
			r.Patch("/{id}", s.UpdateGoal)
			r.Delete("/{id}", s.DeleteGoal)
		})
		r.Route("/logs", func(r chi.Router) {
			r.Post("/", s.CreateLog)
			r.Patch("/{id}", s.UpdateLog)
			r.Delete("/{id}", s.DeleteLog)
		})
		r.Get("/today", s.GetToday)
	})
}

func (s *Server) Run(address string) error {
	if address == "" {
		return errors.New("empty api address provided")
	}
	s.routes()
	return http.ListenAndServe(address, s.mx)
}
