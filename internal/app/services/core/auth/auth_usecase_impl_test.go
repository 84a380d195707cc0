package auth

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*models.User, error) {
	args := m.Called(ctx, username, role)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByName(ctx context.Context, name string) (*models.Patient, error) {
	args := m.Called(ctx, name)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type passthroughTransactor struct{}

func (passthroughTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestAuthUsecase_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	uc := NewAuthUsecase(userRepo, patientRepo, passthroughTransactor{}, zap.NewNop())

	userID := primitive.NewObjectID()
	request := &requests.RegisterUser{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "segredo1",
		Name:     "Ana",
		Contact:  "912345678",
	}

	userRepo.On("FindByUsername", mock.Anything, "ana").Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
		return user.Role == constvars.RoleClient && user.Password != "segredo1" &&
			utils.CheckPasswordHash("segredo1", user.Password)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = userID
	}).Return(nil)
	patientRepo.On("Create", mock.Anything, mock.MatchedBy(func(patient *models.Patient) bool {
		return patient.UserID == userID && patient.Name == "Ana" &&
			patient.Status == constvars.PatientStatusActive && patient.Age == 0
	})).Return(nil)

	response, err := uc.Register(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), response.UserID)
	userRepo.AssertExpectations(t)
	patientRepo.AssertExpectations(t)
}

func TestAuthUsecase_RegisterDuplicates(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockPatientRepository), passthroughTransactor{}, zap.NewNop())
		userRepo.On("FindByUsername", mock.Anything, "ana").Return(&models.User{Username: "ana"}, nil)

		_, err := uc.Register(context.Background(), &requests.RegisterUser{Username: "ana", Email: "a@b.c", Password: "segredo1", Name: "Ana"})
		require.Error(t, err)
		assert.Equal(t, exceptions.KindInvalidArgument, exceptions.KindOf(err))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockPatientRepository), passthroughTransactor{}, zap.NewNop())
		userRepo.On("FindByUsername", mock.Anything, "ana").Return(nil, nil)
		userRepo.On("FindByEmail", mock.Anything, "a@b.c").Return(&models.User{Email: "a@b.c"}, nil)

		_, err := uc.Register(context.Background(), &requests.RegisterUser{Username: "ana", Email: "a@b.c", Password: "segredo1", Name: "Ana"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, err.(*exceptions.CustomError).ClientMessage)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hash, err := utils.HashPassword("segredo1")
	require.NoError(t, err)
	stored := &models.User{ID: primitive.NewObjectID(), Username: "ana", Name: "Ana", Role: constvars.RoleClient, Password: hash}

	tests := []struct {
		name     string
		request  requests.LoginUser
		role     string
		found    *models.User
		wantKind exceptions.Kind
	}{
		{"valid client", requests.LoginUser{Username: "ana", Password: "segredo1"}, constvars.RoleClient, stored, ""},
		{"wrong password", requests.LoginUser{Username: "ana", Password: "errado"}, constvars.RoleClient, stored, exceptions.KindUnauthorized},
		{"unknown user", requests.LoginUser{Username: "ana", Password: "segredo1"}, constvars.RoleClient, nil, exceptions.KindUnauthorized},
		{"admin flag looks up admin role", requests.LoginUser{Username: "ana", Password: "segredo1", IsAdmin: true}, constvars.RoleAdmin, nil, exceptions.KindUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			uc := NewAuthUsecase(userRepo, new(MockPatientRepository), passthroughTransactor{}, zap.NewNop())
			userRepo.On("FindByUsernameAndRole", mock.Anything, tt.request.Username, tt.role).Return(tt.found, nil)

			response, err := uc.Login(context.Background(), &tt.request)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, exceptions.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID.Hex(), response.ID)
			assert.Equal(t, "Ana", response.Name)
			assert.Equal(t, constvars.RoleClient, response.Role)
			userRepo.AssertExpectations(t)
		})
	}
}
