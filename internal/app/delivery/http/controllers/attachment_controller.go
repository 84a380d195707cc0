package controllers

import (
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

type AttachmentController struct {
	Log               *zap.Logger
	AttachmentUsecase contracts.AttachmentUsecase
}

func NewAttachmentController(logger *zap.Logger, attachmentUsecase contracts.AttachmentUsecase) *AttachmentController {
	return &AttachmentController{
		Log:               logger,
		AttachmentUsecase: attachmentUsecase,
	}
}

// GetURL expects to be mounted on a wildcard route, object names carry
// their prefix (reports/..., receipts/...).
func (ctrl *AttachmentController) GetURL(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	objectName := chi.URLParam(r, "*")
	ctrl.Log.Info("AttachmentController.GetURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	url, err := ctrl.AttachmentUsecase.GetAttachmentURL(ctx, objectName)
	if err != nil {
		ctrl.Log.Error("AttachmentController.GetURL error calling AttachmentUsecase.GetAttachmentURL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttachmentURLSuccessMessage, responses.AttachmentURL{
		ObjectName: objectName,
		URL:        url,
	})
}
