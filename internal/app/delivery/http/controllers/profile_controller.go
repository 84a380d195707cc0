package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ProfileController serves a patient's own profile and the admin's patient
// directory.
type ProfileController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewProfileController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *ProfileController {
	return &ProfileController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	ctrl.Log.Info("ProfileController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	profile, err := ctrl.PatientUsecase.GetProfile(ctx, userID)
	if err != nil {
		ctrl.Log.Error("ProfileController.GetProfile error calling PatientUsecase.GetProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	ctrl.Log.Info("ProfileController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	request := new(requests.UpdateProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateProfileRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ProfileController.UpdateProfile validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.PatientUsecase.UpdateProfile(ctx, userID, request); err != nil {
		ctrl.Log.Error("ProfileController.UpdateProfile error calling PatientUsecase.UpdateProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, nil)
}

func (ctrl *ProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	ctrl.Log.Info("ProfileController.DeleteProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.PatientUsecase.DeleteProfile(ctx, userID); err != nil {
		ctrl.Log.Error("ProfileController.DeleteProfile error calling PatientUsecase.DeleteProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.DeleteProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteProfileSuccessMessage, nil)
}

func (ctrl *ProfileController) ListPatients(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProfileController.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	patients, err := ctrl.PatientUsecase.ListPatients(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, patients)
}

func (ctrl *ProfileController) GetPatientDetail(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	name := chi.URLParam(r, constvars.URLParamName)
	ctrl.Log.Info("ProfileController.GetPatientDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	detail, err := ctrl.PatientUsecase.GetPatientDetail(ctx, name)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientDetailSuccessMessage, detail)
}
