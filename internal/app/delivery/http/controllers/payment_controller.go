package controllers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	InternalConfig *config.InternalConfig
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, internalConfig *config.InternalConfig) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("PaymentController.Create requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseMultipartForm(ctrl.InternalConfig.App.MaxUploadSizeInMegabyte << 20); err != nil {
		ctrl.Log.Error("PaymentController.Create error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	request, err := utils.BuildCreatePaymentRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	paymentID, err := ctrl.PaymentUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("PaymentController.Create error calling PaymentUsecase.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PaymentController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePaymentSuccessMessage, responses.CreatedResource{ID: paymentID})
}

func (ctrl *PaymentController) ListAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	payments, err := ctrl.PaymentUsecase.ListAll(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsSuccessMessage, payments)
}

func (ctrl *PaymentController) ListByPatient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	patient := chi.URLParam(r, constvars.URLParamName)
	ctrl.Log.Info("PaymentController.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	payments, err := ctrl.PaymentUsecase.ListByPatient(ctx, patient)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsSuccessMessage, payments)
}
