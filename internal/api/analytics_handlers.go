package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/httputil"
)

var errBadQuery = errors.New("query parameter must be a positive integer within bounds")

const maxTopHabits = 100

type RecommendRequest struct {
	CompletedHabits []string `json:"completed_habits"`
}

// queryInt returns 0 for an absent parameter so services fall back to their defaults.
// Values outside [1, limit] are rejected
func queryInt(r *http.Request, name string, limit int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > limit {
		return 0, errBadQuery
	}
	return n, nil
}

// analytics runs a read-only query for the authorized user and writes its result as-is
func (s *Server) analytics(w http.ResponseWriter, r *http.Request, op string, query func(ctx context.Context, uid uuid.UUID) (any, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	result, err := query(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info(op + " provided")
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	s.analytics(w, r, "history", func(ctx context.Context, uid uuid.UUID) (any, error) {
		history, err := s.analyticsService.History(ctx, uid)
		if err != nil {
			return nil, err
		}
		if history == nil {
			history = entity.History{}
		}
		return map[string]any{"entries": history}, nil
	})
}

func (s *Server) GetDayLogs(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	s.analytics(w, r, "day logs", func(ctx context.Context, uid uuid.UUID) (any, error) {
		evs, err := s.analyticsService.DayLogs(ctx, uid, date)
		if err != nil {
			return nil, err
		}
		if evs == nil {
			evs = []entity.CompletionEvent{}
		}
		return map[string]any{"date": date, "events": evs}, nil
	})
}

func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	s.analytics(w, r, "calendar", func(ctx context.Context, uid uuid.UUID) (any, error) {
		marks, err := s.analyticsService.CalendarMarks(ctx, uid)
		if err != nil {
			return nil, err
		}
		if marks == nil {
			marks = []entity.DayMark{}
		}
		return map[string]any{"marks": marks}, nil
	})
}

func (s *Server) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", service.MaxHeatmapDays)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid days parameter", err)
		return
	}
	s.analytics(w, r, "heatmap", func(ctx context.Context, uid uuid.UUID) (any, error) {
		cells, err := s.analyticsService.Heatmap(ctx, uid, days)
		if err != nil {
			return nil, err
		}
		return map[string]any{"cells": cells}, nil
	})
}

func (s *Server) GetWeekly(w http.ResponseWriter, r *http.Request) {
	s.analytics(w, r, "weekly counts", func(ctx context.Context, uid uuid.UUID) (any, error) {
		counts, err := s.analyticsService.WeeklyCounts(ctx, uid)
		if err != nil {
			return nil, err
		}
		return map[string]any{"weeks": counts}, nil
	})
}

func (s *Server) GetMonthly(w http.ResponseWriter, r *http.Request) {
	months, err := queryInt(r, "months", service.MaxTrendMonths)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid months parameter", err)
		return
	}
	s.analytics(w, r, "monthly trends", func(ctx context.Context, uid uuid.UUID) (any, error) {
		trends, err := s.analyticsService.MonthlyTrends(ctx, uid, months)
		if err != nil {
			return nil, err
		}
		return map[string]any{"months": trends}, nil
	})
}

func (s *Server) GetTotals(w http.ResponseWriter, r *http.Request) {
	s.analytics(w, r, "totals", func(ctx context.Context, uid uuid.UUID) (any, error) {
		return s.analyticsService.Totals(ctx, uid)
	})
}

func (s *Server) GetTopHabits(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", maxTopHabits)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid n parameter", err)
		return
	}
	s.analytics(w, r, "top habits", func(ctx context.Context, uid uuid.UUID) (any, error) {
		top, err := s.analyticsService.MostLogged(ctx, uid, n)
		if err != nil {
			return nil, err
		}
		if top == nil {
			top = []entity.NameCount{}
		}
		return map[string]any{"habits": top}, nil
	})
}

// Recommend accepts an optional body, without it suggestions are based on the user's history
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("recommendation error: reading body", "error", err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var req RecommendRequest
	if len(bytes.TrimSpace(raw)) > 0 {
		if err = sonic.Unmarshal(raw, &req); err != nil {
			logger.Error("recommendation error: invalid body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	s.analytics(w, r, "recommendations", func(ctx context.Context, uid uuid.UUID) (any, error) {
		recs, err := s.analyticsService.Recommend(ctx, uid, req.CompletedHabits)
		if err != nil {
			return nil, err
		}
		if recs == nil {
			recs = []string{}
		}
		return map[string]any{"recommendations": recs}, nil
	})
}
