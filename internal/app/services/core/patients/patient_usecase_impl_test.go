package patients

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubUserRepository struct {
	users     map[primitive.ObjectID]*models.User
	updated   *models.User
	deleteErr error
}

func (s *stubUserRepository) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.users[userID], nil
}

func (s *stubUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepository) Update(ctx context.Context, user *models.User) error {
	copied := *user
	s.updated = &copied
	return nil
}

func (s *stubUserRepository) DeleteByID(ctx context.Context, userID primitive.ObjectID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.users, userID)
	return nil
}

type stubPatientRepository struct {
	patients map[primitive.ObjectID]*models.Patient
	updated  *models.Patient
	deleted  []primitive.ObjectID
}

func (s *stubPatientRepository) Create(ctx context.Context, patient *models.Patient) error { return nil }

func (s *stubPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	for _, patient := range s.patients {
		patients = append(patients, *patient)
	}
	return patients, nil
}

func (s *stubPatientRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Patient, error) {
	return s.patients[userID], nil
}

func (s *stubPatientRepository) FindByName(ctx context.Context, name string) (*models.Patient, error) {
	for _, patient := range s.patients {
		if patient.Name == name {
			return patient, nil
		}
	}
	return nil, nil
}

func (s *stubPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	s.updated = patient
	return nil
}

func (s *stubPatientRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	s.deleted = append(s.deleted, userID)
	return nil
}

type stubAppointmentRepository struct {
	byPatient map[string][]models.Appointment
}

func (s *stubAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (s *stubAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepository) FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	appointments, ok := s.byPatient[patient]
	if !ok {
		return []models.Appointment{}, nil
	}
	return appointments, nil
}

func (s *stubAppointmentRepository) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return []models.Appointment{}, nil
}

func (s *stubAppointmentRepository) UpdateSlot(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) error {
	return nil
}

func (s *stubAppointmentRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error {
	return nil
}

func (s *stubAppointmentRepository) CountByDateAndStatus(ctx context.Context, date, status string) (int64, error) {
	return 0, nil
}

type passthroughTransactor struct{}

func (passthroughTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newPatientFixture(t *testing.T) (*patientUsecase, *stubUserRepository, *stubPatientRepository, primitive.ObjectID) {
	t.Helper()
	hash, err := utils.HashPassword("segredo1")
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	users := &stubUserRepository{users: map[primitive.ObjectID]*models.User{
		userID: {ID: userID, Username: "ana", Email: "ana@example.com", Name: "Ana", Password: hash},
	}}
	patients := &stubPatientRepository{patients: map[primitive.ObjectID]*models.Patient{
		userID: {UserID: userID, Name: "Ana", Email: "ana@example.com"},
	}}
	appointments := &stubAppointmentRepository{byPatient: map[string][]models.Appointment{
		"Ana": {{Patient: "Ana", Date: "2025-03-10", Time: "10:00"}},
	}}

	uc := NewPatientUsecase(users, patients, appointments, passthroughTransactor{}, zap.NewNop()).(*patientUsecase)
	return uc, users, patients, userID
}

func TestPatientUsecase_GetProfile(t *testing.T) {
	uc, _, _, userID := newPatientFixture(t)

	profile, err := uc.GetProfile(context.Background(), userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "ana", profile.User.Username)
	assert.Equal(t, "Ana", profile.Patient.Name)

	_, err = uc.GetProfile(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))

	_, err = uc.GetProfile(context.Background(), "bogus")
	assert.Equal(t, exceptions.KindInvalidArgument, exceptions.KindOf(err))
}

func TestPatientUsecase_UpdateProfileKeepsPasswordWhenOmitted(t *testing.T) {
	uc, users, patients, userID := newPatientFixture(t)
	originalHash := users.users[userID].Password

	err := uc.UpdateProfile(context.Background(), userID.Hex(), &requests.UpdateProfile{
		Email: "ana@example.com",
		Name:  "Ana Silva",
		Age:   34,
		FamilyContext: requests.FamilyContext{
			MaritalStatus: "married",
			Children:      2,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, originalHash, users.updated.Password)
	assert.Equal(t, "Ana Silva", users.updated.Name)
	assert.Equal(t, 34, patients.updated.Age)
	assert.Equal(t, 2, patients.updated.FamilyContext.Children)
	assert.NotNil(t, patients.updated.FamilyContext.Members)
}

func TestPatientUsecase_UpdateProfileRehashesNewPassword(t *testing.T) {
	uc, users, _, userID := newPatientFixture(t)

	err := uc.UpdateProfile(context.Background(), userID.Hex(), &requests.UpdateProfile{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "novasenha",
	})
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("novasenha", users.updated.Password))
}

func TestPatientUsecase_UpdateProfileRejectsForeignEmail(t *testing.T) {
	uc, users, _, userID := newPatientFixture(t)
	otherID := primitive.NewObjectID()
	users.users[otherID] = &models.User{ID: otherID, Email: "bruno@example.com"}

	err := uc.UpdateProfile(context.Background(), userID.Hex(), &requests.UpdateProfile{
		Email: "bruno@example.com",
		Name:  "Ana",
	})
	require.Error(t, err)
	assert.Nil(t, users.updated)
}

func TestPatientUsecase_DeleteProfile(t *testing.T) {
	uc, users, patients, userID := newPatientFixture(t)

	require.NoError(t, uc.DeleteProfile(context.Background(), userID.Hex()))
	assert.Empty(t, users.users)
	assert.Equal(t, []primitive.ObjectID{userID}, patients.deleted)
}

func TestPatientUsecase_DeleteProfileStopsOnUserFailure(t *testing.T) {
	uc, users, patients, userID := newPatientFixture(t)
	users.deleteErr = exceptions.ErrMongoDBDeleteDocument(errors.New("down"))

	err := uc.DeleteProfile(context.Background(), userID.Hex())
	assert.Equal(t, exceptions.KindStoreFailure, exceptions.KindOf(err))
	assert.Empty(t, patients.deleted)
}

func TestPatientUsecase_GetPatientDetail(t *testing.T) {
	uc, _, _, _ := newPatientFixture(t)

	detail, err := uc.GetPatientDetail(context.Background(), "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", detail.Patient.Name)
	require.Len(t, detail.Appointments, 1)
	assert.Equal(t, "10:00", detail.Appointments[0].Time)

	_, err = uc.GetPatientDetail(context.Background(), "Carla")
	assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
}
