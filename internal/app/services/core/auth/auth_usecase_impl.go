package auth

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	Transactor        contracts.Transactor
	Log               *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		PatientRepository: patientRepository,
		Transactor:        transactor,
		Log:               logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.FindByUsername",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	existing, err = uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Register error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Username:  strings.TrimSpace(request.Username),
		Email:     strings.TrimSpace(request.Email),
		Password:  hashedPassword,
		Name:      strings.TrimSpace(request.Name),
		Role:      constvars.RoleClient,
		CreatedAt: now,
	}

	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.UserRepository.Create(txCtx, user); err != nil {
			return err
		}

		patient := &models.Patient{
			UserID:  user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Contact: request.Contact,
			Address: request.Address,
			Status:  constvars.PatientStatusActive,
			FamilyContext: models.FamilyContext{
				Members: []string{},
			},
			CreatedAt: now,
		}
		return uc.PatientRepository.Create(txCtx, patient)
	})
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
	)
	return &responses.RegisterUser{UserID: user.ID.Hex()}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	role := constvars.RoleClient
	if request.IsAdmin {
		role = constvars.RoleAdmin
	}

	user, err := uc.UserRepository.FindByUsernameAndRole(ctx, request.Username, role)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling UserRepository.FindByUsernameAndRole",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
	)
	return &responses.LoginUser{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}, nil
}
