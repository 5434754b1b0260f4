package api_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/habitlog/internal/api"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/internal/service/mocks"
	"github.com/limbo/habitlog/pkg/entity"
	jwtservice "github.com/limbo/habitlog/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	email    = "test@example.com"
	password = "test_password"
	secret   = "secret"
)

var (
	userID = uuid.New()
	user   = &entity.User{ID: userID, Email: email}
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	result := make(map[string]any)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
	return result
}

type mockedServer struct {
	serv      *api.Server
	users     *mocks.MockUserServiceI
	habits    *mocks.MockHabitsServiceI
	analytics *mocks.MockAnalyticsServiceI
	token     string
}

func newMockedServer(t *testing.T) *mockedServer {
	ctrl := gomock.NewController(t)
	jwt := jwtservice.New(secret, time.Hour)
	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)
	ms := &mockedServer{
		users:     mocks.NewMockUserServiceI(ctrl),
		habits:    mocks.NewMockHabitsServiceI(ctrl),
		analytics: mocks.NewMockAnalyticsServiceI(ctrl),
		token:     token,
	}
	ms.serv = api.New(&api.ServicesList{
		UserService:      ms.users,
		HabitsService:    ms.habits,
		AnalyticsService: ms.analytics,
		JwtService:       jwt,
	})
	return ms
}

func (ms *mockedServer) do(method, target string, body io.Reader, authorized bool) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+ms.token)
	}
	ms.serv.Handler().ServeHTTP(rr, req)
	return rr
}

// authorize lets AuthMiddleware find the token owner
func (ms *mockedServer) authorize() {
	ms.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil).AnyTimes()
}

func TestRegister(t *testing.T) {
	ms := newMockedServer(t)
	req := service.RegisterRequest{Email: email, Password: password}
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         any
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ms.users.EXPECT().Register(gomock.Any(), &req).Return(user, nil)
			},
			Body: api.RegisterRequest{Email: email, Password: password},
		},
		{
			Desc:         "existed user",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				ms.users.EXPECT().Register(gomock.Any(), &req).Return(nil, errorvalues.ErrUserExists)
			},
			Body: api.RegisterRequest{Email: email, Password: password},
		},
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ms.users.EXPECT().Register(gomock.Any(), &req).Return(nil, errorvalues.ErrValidation)
			},
			Body: api.RegisterRequest{Email: email, Password: password},
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         "not an object",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := ms.do(http.MethodPost, "/api/v1/auth/register", jsonBody(t, tc.Body), false)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	ms := newMockedServer(t)
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "logged in",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.users.EXPECT().Login(gomock.Any(), email, password).Return(user, nil)
			},
		},
		{
			Desc:         "wrong password",
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				ms.users.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrWrongCredentials)
			},
		},
		{
			Desc:         "user not found",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				ms.users.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				ms.users.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrCorruptedData)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := ms.do(http.MethodPost, "/api/v1/auth/login", jsonBody(t, api.LoginRequest{Email: email, Password: password}), false)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedCode == http.StatusOK {
				result := decode(t, rr)
				assert.Equal(t, userID.String(), result["uid"])
				assert.NotEmpty(t, result["token"])
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	ms := newMockedServer(t)
	t.Run("no token", func(t *testing.T) {
		rr := ms.do(http.MethodGet, "/api/v1/habits", nil, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("forged token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil)
		token, err := jwtservice.New("other", time.Hour).GenerateToken(user)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		ms.serv.Handler().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("deleted user", func(t *testing.T) {
		ms.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := ms.do(http.MethodGet, "/api/v1/habits", nil, true)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("passed", func(t *testing.T) {
		ms.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		ms.habits.EXPECT().ListHabits(gomock.Any(), userID).Return(nil, nil)
		rr := ms.do(http.MethodGet, "/api/v1/habits", nil, true)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}

func TestHabitsHandlers(t *testing.T) {
	ms := newMockedServer(t)
	ms.authorize()
	habitReq := service.HabitRequest{
		Name:      "Read",
		Frequency: 1,
		Days:      []entity.Weekday{entity.Monday},
	}
	habit := &entity.Habit{ID: "h1", Name: "Read", Frequency: 1, Days: []entity.Weekday{entity.Monday}}
	done := *habit
	done.Streak, done.CompletedToday = 1, true

	testCases := []struct {
		Desc         string
		Method       string
		Target       string
		Body         any
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "list",
			Method:       http.MethodGet,
			Target:       "/api/v1/habits",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.habits.EXPECT().ListHabits(gomock.Any(), userID).Return([]entity.Habit{*habit}, nil)
			},
		},
		{
			Desc:         "pending",
			Method:       http.MethodGet,
			Target:       "/api/v1/habits/pending",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.habits.EXPECT().PendingHabits(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			Desc:         "today",
			Method:       http.MethodGet,
			Target:       "/api/v1/habits/today",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.habits.EXPECT().TodayHabits(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			Desc:         "created",
			Method:       http.MethodPost,
			Target:       "/api/v1/habits",
			Body:         habitReq,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ms.habits.EXPECT().AddHabit(gomock.Any(), userID, &habitReq).Return(habit, nil)
			},
		},
		{
			Desc:         "create validation failure",
			Method:       http.MethodPost,
			Target:       "/api/v1/habits",
			Body:         habitReq,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ms.habits.EXPECT().AddHabit(gomock.Any(), userID, &habitReq).Return(nil, errorvalues.ErrValidation)
			},
		},
		{
			Desc:         "updated",
			Method:       http.MethodPut,
			Target:       "/api/v1/habits/h1",
			Body:         habitReq,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.habits.EXPECT().UpdateHabit(gomock.Any(), userID, "h1", &habitReq).Return(habit, nil)
			},
		},
		{
			Desc:         "deleted",
			Method:       http.MethodDelete,
			Target:       "/api/v1/habits/h1",
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				ms.habits.EXPECT().DeleteHabit(gomock.Any(), userID, "h1").Return(nil)
			},
		},
		{
			Desc:         "toggled",
			Method:       http.MethodPost,
			Target:       "/api/v1/habits/h1/toggle",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.habits.EXPECT().ToggleComplete(gomock.Any(), userID, "h1").Return(&done, nil)
			},
		},
		{
			Desc:         "toggle unknown habit",
			Method:       http.MethodPost,
			Target:       "/api/v1/habits/nope/toggle",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				ms.habits.EXPECT().ToggleComplete(gomock.Any(), userID, "nope").Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:         "skip storage failure",
			Method:       http.MethodPost,
			Target:       "/api/v1/habits/h1/skip",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				ms.habits.EXPECT().SkipHabit(gomock.Any(), userID, "h1").Return(nil, errorvalues.ErrCorruptedData)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			var body io.Reader
			if tc.Body != nil {
				body = jsonBody(t, tc.Body)
			}
			rr := ms.do(tc.Method, tc.Target, body, true)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestListHabitsEmpty(t *testing.T) {
	ms := newMockedServer(t)
	ms.authorize()
	ms.habits.EXPECT().ListHabits(gomock.Any(), userID).Return(nil, nil)
	rr := ms.do(http.MethodGet, "/api/v1/habits", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{}, decode(t, rr)["habits"])
}

func TestAnalyticsHandlers(t *testing.T) {
	ms := newMockedServer(t)
	ms.authorize()
	testCases := []struct {
		Desc         string
		Method       string
		Target       string
		Body         io.Reader
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "history",
			Method:       http.MethodGet,
			Target:       "/api/v1/history",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().History(gomock.Any(), userID).Return(entity.History{}, nil)
			},
		},
		{
			Desc:         "day logs bad date",
			Method:       http.MethodGet,
			Target:       "/api/v1/history/yesterday",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().DayLogs(gomock.Any(), userID, "yesterday").Return(nil, errorvalues.ErrValidation)
			},
		},
		{
			Desc:         "calendar",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/calendar",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().CalendarMarks(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			Desc:         "heatmap default days",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/heatmap",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().Heatmap(gomock.Any(), userID, 0).Return(nil, nil)
			},
		},
		{
			Desc:         "heatmap days",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/heatmap?days=30",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().Heatmap(gomock.Any(), userID, 30).Return(nil, nil)
			},
		},
		{
			Desc:         "heatmap bad days",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/heatmap?days=-3",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "heatmap too many days",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/heatmap?days=100000",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "monthly too many months",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/monthly?months=100000",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "monthly overflowing months",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/monthly?months=9000000000000",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "heatmap upper bound",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/heatmap?days=366",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().Heatmap(gomock.Any(), userID, service.MaxHeatmapDays).Return(nil, nil)
			},
		},
		{
			Desc:         "monthly",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/monthly?months=3",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().MonthlyTrends(gomock.Any(), userID, 3).Return(nil, nil)
			},
		},
		{
			Desc:         "totals",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/totals",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().Totals(gomock.Any(), userID).Return(entity.Totals{Completed: 2}, nil)
			},
		},
		{
			Desc:         "top",
			Method:       http.MethodGet,
			Target:       "/api/v1/analytics/top?n=abc",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "recommend from history",
			Method:       http.MethodPost,
			Target:       "/api/v1/analytics/recommend",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().Recommend(gomock.Any(), userID, nil).Return([]string{"Walking"}, nil)
			},
		},
		{
			Desc:         "recommend from body",
			Method:       http.MethodPost,
			Target:       "/api/v1/analytics/recommend",
			Body:         bytes.NewReader([]byte(`{"completed_habits":["Yoga"]}`)),
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ms.analytics.EXPECT().Recommend(gomock.Any(), userID, []string{"Yoga"}).Return([]string{"Walking"}, nil)
			},
		},
		{
			Desc:         "recommend invalid body",
			Method:       http.MethodPost,
			Target:       "/api/v1/analytics/recommend",
			Body:         bytes.NewReader([]byte(`{"completed_habits":`)),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := ms.do(tc.Method, tc.Target, tc.Body, true)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestWeeklyResponse(t *testing.T) {
	ms := newMockedServer(t)
	ms.authorize()
	ms.analytics.EXPECT().WeeklyCounts(gomock.Any(), userID).Return([]int{3, 1, 0, 1}, nil)
	rr := ms.do(http.MethodGet, "/api/v1/analytics/weekly", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{float64(3), float64(1), float64(0), float64(1)}, decode(t, rr)["weeks"])
}

func TestMetricsEndpoint(t *testing.T) {
	ms := newMockedServer(t)
	rr := ms.do(http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, rr.Code)
}
