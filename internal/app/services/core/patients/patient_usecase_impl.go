package patients

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type patientUsecase struct {
	UserRepository        contracts.UserRepository
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	Transactor            contracts.Transactor
	Log                   *zap.Logger
}

func NewPatientUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		UserRepository:        userRepository,
		PatientRepository:     patientRepository,
		AppointmentRepository: appointmentRepository,
		Transactor:            transactor,
		Log:                   logger,
	}
}

func (uc *patientUsecase) GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	user, err := uc.findUser(ctx, objectID)
	if err != nil {
		uc.Log.Error("patientUsecase.GetProfile error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByUserID(ctx, objectID)
	if err != nil {
		uc.Log.Error("patientUsecase.GetProfile error calling PatientRepository.FindByUserID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.UserProfile{User: user, Patient: patient}, nil
}

func (uc *patientUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	user, err := uc.findUser(ctx, objectID)
	if err != nil {
		return err
	}

	if request.Email != user.Email {
		owner, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return err
		}
		if owner != nil && owner.ID != user.ID {
			return exceptions.ErrEmailAlreadyExist(nil)
		}
	}

	user.Email = request.Email
	user.Name = request.Name
	if request.Password != "" {
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			uc.Log.Error("patientUsecase.UpdateProfile error hashing password",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrHashPassword(err)
		}
		user.Password = hashedPassword
	}

	members := request.FamilyContext.Members
	if members == nil {
		members = []string{}
	}
	patient := &models.Patient{
		UserID:  objectID,
		Name:    request.Name,
		Email:   request.Email,
		Contact: request.Contact,
		Address: request.Address,
		Age:     request.Age,
		FamilyContext: models.FamilyContext{
			MaritalStatus: request.FamilyContext.MaritalStatus,
			Children:      request.FamilyContext.Children,
			Members:       members,
		},
	}

	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.UserRepository.Update(txCtx, user); err != nil {
			return err
		}
		return uc.PatientRepository.Update(txCtx, patient)
	})
	if err != nil {
		uc.Log.Error("patientUsecase.UpdateProfile error updating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("patientUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *patientUsecase) DeleteProfile(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeleteProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.UserRepository.DeleteByID(txCtx, objectID); err != nil {
			return err
		}
		return uc.PatientRepository.DeleteByUserID(txCtx, objectID)
	})
	if err != nil {
		uc.Log.Error("patientUsecase.DeleteProfile error deleting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("patientUsecase.DeleteProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatients error calling PatientRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (uc *patientUsecase) GetPatientDetail(ctx context.Context, name string) (*responses.PatientDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	patient, err := uc.PatientRepository.FindByName(ctx, name)
	if err != nil {
		uc.Log.Error("patientUsecase.GetPatientDetail error calling PatientRepository.FindByName",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "patient")
	}

	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, name)
	if err != nil {
		uc.Log.Error("patientUsecase.GetPatientDetail error calling AppointmentRepository.FindByPatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.GetPatientDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return &responses.PatientDetail{Patient: patient, Appointments: appointments}, nil
}

func (uc *patientUsecase) findUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "user")
	}
	return user, nil
}
