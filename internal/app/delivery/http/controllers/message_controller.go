package controllers

import (
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

type MessageController struct {
	Log            *zap.Logger
	MessageUsecase contracts.MessageUsecase
}

func NewMessageController(logger *zap.Logger, messageUsecase contracts.MessageUsecase) *MessageController {
	return &MessageController{
		Log:            logger,
		MessageUsecase: messageUsecase,
	}
}

func (ctrl *MessageController) Send(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("MessageController.Send requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MessageController.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SendMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSendMessageRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	messageID, err := ctrl.MessageUsecase.Send(ctx, request)
	if err != nil {
		ctrl.Log.Error("MessageController.Send error calling MessageUsecase.Send",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MessageController.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SendMessageSuccessMessage, responses.CreatedResource{ID: messageID})
}

func (ctrl *MessageController) Reply(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		ctrl.Log.Error("MessageController.Reply requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MessageController.Reply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ReplyMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeReplyMessageRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	messageID, err := ctrl.MessageUsecase.Reply(ctx, request)
	if err != nil {
		ctrl.Log.Error("MessageController.Reply error calling MessageUsecase.Reply",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReplyMessageSuccessMessage, responses.CreatedResource{ID: messageID})
}

func (ctrl *MessageController) ListForClient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	name := chi.URLParam(r, constvars.URLParamName)
	ctrl.Log.Info("MessageController.ListForClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	messages, err := ctrl.MessageUsecase.ListForClient(ctx, name)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMessagesSuccessMessage, messages)
}

func (ctrl *MessageController) ListAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MessageController.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	messages, err := ctrl.MessageUsecase.ListAll(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMessagesSuccessMessage, messages)
}

func (ctrl *MessageController) ListByClient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	name := chi.URLParam(r, constvars.URLParamName)
	ctrl.Log.Info("MessageController.ListByClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	messages, err := ctrl.MessageUsecase.ListByClient(ctx, name)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMessagesSuccessMessage, messages)
}

func (ctrl *MessageController) Edit(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	messageID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("MessageController.Edit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)

	request := new(requests.EditMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.Subject = strings.TrimSpace(request.Subject)
	request.Text = strings.TrimSpace(request.Text)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.MessageUsecase.Edit(ctx, messageID, request); err != nil {
		ctrl.Log.Error("MessageController.Edit error calling MessageUsecase.Edit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EditMessageSuccessMessage, nil)
}

func (ctrl *MessageController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	messageID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("MessageController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.MessageUsecase.Delete(ctx, messageID); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMessageSuccessMessage, nil)
}

func (ctrl *MessageController) MarkRead(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	messageID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("MessageController.MarkRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.MessageUsecase.MarkRead(ctx, messageID); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkMessageReadSuccessMessage, nil)
}
