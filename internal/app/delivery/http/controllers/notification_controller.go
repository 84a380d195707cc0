package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NotificationController serves the badge counters shown in the client and
// admin navigation.
type NotificationController struct {
	Log            *zap.Logger
	CounterUsecase contracts.CounterUsecase
}

func NewNotificationController(logger *zap.Logger, counterUsecase contracts.CounterUsecase) *NotificationController {
	return &NotificationController{
		Log:            logger,
		CounterUsecase: counterUsecase,
	}
}

func (ctrl *NotificationController) ClientCounters(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	name := chi.URLParam(r, constvars.URLParamName)
	ctrl.Log.Info("NotificationController.ClientCounters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	counters, err := ctrl.CounterUsecase.ClientCounters(ctx, name)
	if err != nil {
		ctrl.Log.Error("NotificationController.ClientCounters error calling CounterUsecase.ClientCounters",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCountersSuccessMessage, counters)
}

func (ctrl *NotificationController) AdminCounters(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("NotificationController.AdminCounters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	counters, err := ctrl.CounterUsecase.AdminCounters(ctx)
	if err != nil {
		ctrl.Log.Error("NotificationController.AdminCounters error calling CounterUsecase.AdminCounters",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCountersSuccessMessage, counters)
}
