package middlewares

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockResourceLimiter struct {
	mock.Mock
}

func (m *MockResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.ApplyResourceLimiterInput) (*contracts.ApplyResourceLimiterOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.ApplyResourceLimiterOutput)
	return out, args.Error(1)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Keeps client request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "abc-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generates one when missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, time.Minute, zap.NewNop())
	handler := limiter.Limit(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest("POST", "/auth/login", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestQuota(t *testing.T) {
	t.Run("Over quota returns 429 with Retry-After", func(t *testing.T) {
		limiter := new(MockResourceLimiter)
		limiter.On("ApplyResourceLimiter", mock.Anything, mock.MatchedBy(func(in *contracts.ApplyResourceLimiterInput) bool {
			return in.ResourceName == "10.0.0.1" && in.LimiterGroupName == "booking" && in.MaxQuota == 30
		})).Return(&contracts.ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: 12}, nil)

		m := &Middlewares{Log: zap.NewNop(), ResourceLimiter: limiter}
		req := httptest.NewRequest("POST", "/appointments", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		m.Quota("booking", 60, 30)(okHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "12", rr.Header().Get(constvars.HeaderRetryAfter))
		limiter.AssertExpectations(t)
	})

	t.Run("Limiter failure lets request through", func(t *testing.T) {
		limiter := new(MockResourceLimiter)
		limiter.On("ApplyResourceLimiter", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

		m := &Middlewares{Log: zap.NewNop(), ResourceLimiter: limiter}
		rr := httptest.NewRecorder()
		m.Quota("booking", 60, 30)(okHandler()).ServeHTTP(rr, httptest.NewRequest("POST", "/appointments", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestBodyLimit(t *testing.T) {
	m := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{App: config.App{RequestBodyLimitInMegabyte: 1}},
	}

	req := httptest.NewRequest("POST", "/appointments", strings.NewReader(strings.Repeat("a", 2<<20)))
	rr := httptest.NewRecorder()
	m.BodyLimit(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestBodyLimit_MultipartUsesUploadLimit(t *testing.T) {
	m := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{App: config.App{
			RequestBodyLimitInMegabyte: 1,
			MaxUploadSizeInMegabyte:    4,
		}},
	}

	req := httptest.NewRequest("POST", "/admin/reports", strings.NewReader(strings.Repeat("a", 2<<20)))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rr := httptest.NewRecorder()
	m.BodyLimit(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
