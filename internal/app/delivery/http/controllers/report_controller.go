package controllers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReportController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("ReportController.Create requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ReportController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxMemory := ctrl.InternalConfig.App.MaxUploadSizeInMegabyte << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		ctrl.Log.Error("ReportController.Create error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	request, err := utils.BuildCreateReportRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	reportID, err := ctrl.ReportUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("ReportController.Create error calling ReportUsecase.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReportController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateReportSuccessMessage, responses.CreatedResource{ID: reportID})
}

func (ctrl *ReportController) ListAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ReportController.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	reports, err := ctrl.ReportUsecase.ListAll(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, reports)
}

func (ctrl *ReportController) ListByPatient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	patient := chi.URLParam(r, constvars.URLParamName)
	ctrl.Log.Info("ReportController.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	reports, err := ctrl.ReportUsecase.ListByPatient(ctx, patient)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, reports)
}

func (ctrl *ReportController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	reportID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("ReportController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	request := new(requests.UpdateReport)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.Type = strings.TrimSpace(request.Type)
	request.Content = strings.TrimSpace(request.Content)
	request.Entity = strings.TrimSpace(request.Entity)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.ReportUsecase.Update(ctx, reportID, request); err != nil {
		ctrl.Log.Error("ReportController.Update error calling ReportUsecase.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateReportSuccessMessage, nil)
}

func (ctrl *ReportController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	reportID := chi.URLParam(r, constvars.URLParamID)
	reportType := r.URL.Query().Get(constvars.URLQueryParamType)
	ctrl.Log.Info("ReportController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
		zap.String(constvars.LoggingReportTypeKey, reportType),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.ReportUsecase.Delete(ctx, reportID, reportType); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteReportSuccessMessage, nil)
}
