package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientUsecase interface {
	GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) error
	DeleteProfile(ctx context.Context, userID string) error
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatientDetail(ctx context.Context, name string) (*responses.PatientDetail, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Patient, error)
	FindByName(ctx context.Context, name string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}
