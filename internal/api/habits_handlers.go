package api

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/httputil"
)

func (s *Server) listing(w http.ResponseWriter, r *http.Request, op string, list func(context.Context, uuid.UUID) ([]entity.Habit, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habits, err := list(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	if habits == nil {
		habits = []entity.Habit{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HabitsResponse{
		UserID: uid.String(),
		Habits: habits,
	})
	logger.Info("habits provided", "count", len(habits))
}

func (s *Server) ListHabits(w http.ResponseWriter, r *http.Request) {
	s.listing(w, r, "getting habits", s.habitService.ListHabits)
}

func (s *Server) PendingHabits(w http.ResponseWriter, r *http.Request) {
	s.listing(w, r, "getting pending habits", s.habitService.PendingHabits)
}

func (s *Server) TodayHabits(w http.ResponseWriter, r *http.Request) {
	s.listing(w, r, "getting today habits", s.habitService.TodayHabits)
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.HabitRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitService.AddHabit(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "creating habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created", "habit_id", habit.ID)
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.HabitRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitService.UpdateHabit(ctx, uid, r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, logger, "updating habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated", "habit_id", habit.ID)
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err = s.habitService.DeleteHabit(ctx, uid, r.PathValue("id")); err != nil {
		writeServiceError(w, logger, "deleting habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("habit deleted")
}

func (s *Server) action(w http.ResponseWriter, r *http.Request, op string, apply func(context.Context, uuid.UUID, string) (*entity.Habit, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := apply(ctx, uid, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info(op+" done", "habit_id", habit.ID, "streak", habit.Streak)
}

func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	s.action(w, r, "toggling habit", s.habitService.ToggleComplete)
}

func (s *Server) SkipHabit(w http.ResponseWriter, r *http.Request) {
	s.action(w, r, "skipping habit", s.habitService.SkipHabit)
}
