package messaging

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type eventPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	eventPublisherInstance contracts.EventPublisher
	onceEventPublisher     sync.Once
	eventPublisherError    error
)

// NewEventPublisher opens one channel on the connection and declares the
// durable notification queue before anything is published to it.
func NewEventPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.EventPublisher, error) {
	onceEventPublisher.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			eventPublisherError = exceptions.ErrRabbitMQOpenChannel(err)
			return
		}

		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			eventPublisherError = exceptions.ErrRabbitMQOpenChannel(err)
			return
		}

		eventPublisherInstance = &eventPublisher{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return eventPublisherInstance, eventPublisherError
}

func (s *eventPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("eventPublisher.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		s.Log.Error("eventPublisher.PublishAppointmentEvent error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"event":            event.Event,
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		MessageId:    event.AppointmentID + ":" + event.Event,
		Timestamp:    event.OccurredAt,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("eventPublisher.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("eventPublisher.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}
