package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/habithero/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	habitService    service.HabitsServiceI
	progressService service.ProgressServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	HabitsService   service.HabitsServiceI
	ProgressService service.ProgressServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		habitService:    servicesOptions.HabitsService,
		progressService: servicesOptions.ProgressService,
		jwtService:      servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits", s.GetHabits)
			r.Get("/habits/{id}", s.GetHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/complete", s.CompleteHabit)
			r.Get("/stats", s.GetStats)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
