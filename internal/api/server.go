package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx               *chi.Mux
	srv              *http.Server
	userService      service.UserServiceI
	habitService     service.HabitsServiceI
	analyticsService service.AnalyticsServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	HabitsService    service.HabitsServiceI
	AnalyticsService service.AnalyticsServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		habitService:     servicesOptions.HabitsService,
		analyticsService: servicesOptions.AnalyticsService,
		jwtService:       servicesOptions.JwtService,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)

	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Delete("/auth/account", s.DeleteAccount)

			r.Route("/habits", func(r chi.Router) {
				r.Get("/", s.ListHabits)
				r.Post("/", s.CreateHabit)
				r.Get("/pending", s.PendingHabits)
				r.Get("/today", s.TodayHabits)
				r.Put("/{id}", s.UpdateHabit)
				r.Delete("/{id}", s.DeleteHabit)
				r.Post("/{id}/toggle", s.ToggleHabit)
				r.Post("/{id}/skip", s.SkipHabit)
			})

			r.Get("/history", s.GetHistory)
			r.Get("/history/{date}", s.GetDayLogs)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/calendar", s.GetCalendar)
				r.Get("/heatmap", s.GetHeatmap)
				r.Get("/weekly", s.GetWeekly)
				r.Get("/monthly", s.GetMonthly)
				r.Get("/totals", s.GetTotals)
				r.Get("/top", s.GetTopHabits)
				r.Post("/recommend", s.Recommend)
			})
		})
	})
}

// Handler exposes the router, handy for httptest
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run blocks until the server stops. Shutdown is registered as a cleanup job
func (s *Server) Run(address string) error {
	s.srv = &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return s.srv.Shutdown(ctx)
		},
	})
	slog.Info("server is running", slog.String("address", address))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
