package routers

import (
	"bytes"
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) ListAvailable(ctx context.Context, date string) ([]string, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentUsecase) Reschedule(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) error {
	args := m.Called(ctx, appointmentID, request)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*models.Message, error) {
	args := m.Called(ctx, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockAppointmentUsecase) FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) ExportCalendar(ctx context.Context, patient string) ([]byte, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterUser), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

func (m *MockPatientUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) error {
	args := m.Called(ctx, userID, request)
	return args.Error(0)
}

func (m *MockPatientUsecase) DeleteProfile(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPatientUsecase) ListPatients(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientUsecase) GetPatientDetail(ctx context.Context, name string) (*responses.PatientDetail, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PatientDetail), args.Error(1)
}

type MockAttachmentUsecase struct {
	mock.Mock
}

func (m *MockAttachmentUsecase) GetAttachmentURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

type testServer struct {
	router       *chi.Mux
	appointments *MockAppointmentUsecase
	auth         *MockAuthUsecase
	patients     *MockPatientUsecase
	attachments  *MockAttachmentUsecase
}

func newTestServer() *testServer {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  2,
			RequestBodyLimitInMegabyte: 1,
			AdminAPIKey:                "admin-secret",
		},
	}

	server := &testServer{
		router:       chi.NewRouter(),
		appointments: new(MockAppointmentUsecase),
		auth:         new(MockAuthUsecase),
		patients:     new(MockPatientUsecase),
		attachments:  new(MockAttachmentUsecase),
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig, nil)
	profileController := controllers.NewProfileController(logger, server.patients)

	SetupRoutes(
		server.router,
		internalConfig,
		middlewareInstance,
		controllers.NewAppointmentController(logger, server.appointments),
		controllers.NewAuthController(logger, server.auth),
		profileController,
		controllers.NewMessageController(logger, nil),
		controllers.NewReportController(logger, nil, internalConfig),
		controllers.NewPaymentController(logger, nil, internalConfig),
		controllers.NewNotificationController(logger, nil),
		controllers.NewAttachmentController(logger, server.attachments),
	)
	return server
}

func (s *testServer) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	switch b := body.(type) {
	case nil:
		payload = new(bytes.Buffer)
	case string:
		payload = bytes.NewBufferString(b)
	default:
		encoded, _ := json.Marshal(b)
		payload = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRouter_BookingFlow(t *testing.T) {
	server := newTestServer()

	t.Run("availability lists open hours", func(t *testing.T) {
		server.appointments.On("ListAvailable", mock.Anything, "2025-03-10").
			Return([]string{"09:00", "10:00", "11:00"}, nil).Once()

		rr := server.do("GET", "/api/v1/availability?date=2025-03-10", nil, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		var slots []string
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &slots))
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
	})

	t.Run("availability without date", func(t *testing.T) {
		rr := server.do("GET", "/api/v1/availability", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("booking returns the new id", func(t *testing.T) {
		server.appointments.On("Create", mock.Anything, &requests.CreateAppointment{Patient: "Ana", Date: "2025-03-10", Time: "10:00"}).
			Return("65f0c0ffee0000000000abcd", nil).Once()

		rr := server.do("POST", "/api/v1/appointments", map[string]string{"patient": " Ana ", "date": "2025-03-10", "time": "10:00"}, nil)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var created responses.CreatedResource
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &created))
		assert.Equal(t, "65f0c0ffee0000000000abcd", created.ID)
	})

	t.Run("booking a taken slot is a conflict", func(t *testing.T) {
		server.appointments.On("Create", mock.Anything, &requests.CreateAppointment{Patient: "Bruno", Date: "2025-03-10", Time: "10:00"}).
			Return("", exceptions.ErrSlotAlreadyOccupied(errors.New("taken"))).Once()

		rr := server.do("POST", "/api/v1/appointments", map[string]string{"patient": "Bruno", "date": "2025-03-10", "time": "10:00"}, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeEnvelope(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	})

	t.Run("booking outside working hours never reaches the usecase", func(t *testing.T) {
		rr := server.do("POST", "/api/v1/appointments", map[string]string{"patient": "Ana", "date": "2025-03-10", "time": "18:00"}, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("booking with malformed json", func(t *testing.T) {
		rr := server.do("POST", "/api/v1/appointments", "{not json", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rescheduling an unknown appointment", func(t *testing.T) {
		server.appointments.On("Reschedule", mock.Anything, "missing", &requests.RescheduleAppointment{Date: "2025-03-11", Time: "09:00"}).
			Return(exceptions.ErrAppointmentNotFound(nil)).Once()

		rr := server.do("PUT", "/api/v1/appointments/missing", map[string]string{"date": "2025-03-11", "time": "09:00"}, nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("cancelling returns the notification message", func(t *testing.T) {
		message := &models.Message{Sender: "Ana", Subject: "Appointment cancelled"}
		server.appointments.On("Cancel", mock.Anything, "65f0c0ffee0000000000abcd", &requests.CancelAppointment{Reason: "sick", CancelledBy: "patient"}).
			Return(message, nil).Once()

		rr := server.do("DELETE", "/api/v1/appointments/65f0c0ffee0000000000abcd", map[string]string{"reason": "sick", "cancelledBy": "patient"}, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeEnvelope(t, rr).Success)
	})

	t.Run("cancelling without a reason", func(t *testing.T) {
		server.appointments.On("Cancel", mock.Anything, "65f0c0ffee0000000000abcd", &requests.CancelAppointment{Reason: "", CancelledBy: "patient"}).
			Return(nil, exceptions.ErrCancellationReasonRequired(nil)).Once()

		rr := server.do("DELETE", "/api/v1/appointments/65f0c0ffee0000000000abcd", map[string]string{"cancelledBy": "patient"}, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("calendar export", func(t *testing.T) {
		server.appointments.On("ExportCalendar", mock.Anything, "Ana").
			Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil).Once()

		rr := server.do("GET", "/api/v1/appointments/patient/Ana/calendar.ics", nil, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		mediaType, params, err := mime.ParseMediaType(rr.Header().Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "text/calendar", mediaType)
		assert.Equal(t, "utf-8", params["charset"])
		disposition, params, err := mime.ParseMediaType(rr.Header().Get("Content-Disposition"))
		require.NoError(t, err)
		assert.Equal(t, "attachment", disposition)
		assert.Equal(t, "Ana.ics", params["filename"])
		assert.Contains(t, rr.Body.String(), "BEGIN:VCALENDAR")
	})

	t.Run("calendar export quotes the file name", func(t *testing.T) {
		server.appointments.On("ExportCalendar", mock.Anything, `Ana"; x`).
			Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil).Once()

		rr := server.do("GET", "/api/v1/appointments/patient/Ana%22;%20x/calendar.ics", nil, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		disposition, params, err := mime.ParseMediaType(rr.Header().Get("Content-Disposition"))
		require.NoError(t, err)
		assert.Equal(t, "attachment", disposition)
		assert.Equal(t, `Ana"; x.ics`, params["filename"])
	})

	server.appointments.AssertExpectations(t)
}

func TestRouter_RequestIDIsPropagated(t *testing.T) {
	server := newTestServer()
	server.appointments.On("FindByPatient", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY) == "client-supplied-id"
	}), "Ana").Return([]models.Appointment{}, nil).Once()

	rr := server.do("GET", "/api/v1/appointments/patient/Ana", nil, map[string]string{"X-Request-ID": "client-supplied-id"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "client-supplied-id", rr.Header().Get("X-Request-ID"))
	server.appointments.AssertExpectations(t)
}

func TestRouter_AdminRoutesRequireAPIKey(t *testing.T) {
	server := newTestServer()

	t.Run("missing key", func(t *testing.T) {
		rr := server.do("GET", "/api/v1/admin/patients", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		rr := server.do("GET", "/api/v1/admin/patients", nil, map[string]string{"x-api-key": "guess"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		server.patients.On("ListPatients", mock.Anything).Return([]models.Patient{{Name: "Ana"}}, nil).Once()

		rr := server.do("GET", "/api/v1/admin/patients", nil, map[string]string{"x-api-key": "admin-secret"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	server.patients.AssertNotCalled(t, "GetPatientDetail")
	server.patients.AssertExpectations(t)
}

func TestRouter_AuthRoutesAreRateLimited(t *testing.T) {
	server := newTestServer()
	server.auth.On("Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).
		Return(nil, exceptions.ErrInvalidUsernameOrPassword(nil))

	login := map[string]string{"username": "ana", "password": "wrong-password"}
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, server.do("POST", "/api/v1/auth/login", login, nil).Code)
	}

	assert.Equal(t, http.StatusTooManyRequests, codes[2])
	assert.NotEqual(t, http.StatusTooManyRequests, codes[0])
}

func TestRouter_AttachmentWildcard(t *testing.T) {
	server := newTestServer()
	server.attachments.On("GetAttachmentURL", mock.Anything, "reports/5b1c.pdf").
		Return("https://minio.local/clinic/reports/5b1c.pdf?sig=1", nil).Once()

	rr := server.do("GET", "/api/v1/attachments/reports/5b1c.pdf", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var attachment responses.AttachmentURL
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &attachment))
	assert.Equal(t, "reports/5b1c.pdf", attachment.ObjectName)
	server.attachments.AssertExpectations(t)
}

func TestRouter_UnknownRoute(t *testing.T) {
	server := newTestServer()

	rr := server.do("GET", "/api/v1/nowhere", nil, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
