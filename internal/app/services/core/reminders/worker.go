package reminders

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockTTL = 2 * time.Minute
	// sentMarkerTTL outlives the reminder date so reruns on the same or the
	// next day still see the marker.
	sentMarkerTTL = 48 * time.Hour
)

// Worker publishes a reminder event for every appointment booked for the
// next day. Only the instance holding the leader lock does the work, and a
// Redis marker per appointment keeps later runs from sending it again.
type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	sent         contracts.RedisRepository
	appointments contracts.AppointmentRepository
	publisher    contracts.EventPublisher
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	locker contracts.LockerService,
	sent contracts.RedisRepository,
	appointments contracts.AppointmentRepository,
	publisher contracts.EventPublisher,
) *Worker {
	return &Worker{
		log:          log,
		cfg:          cfg,
		locker:       locker,
		sent:         sent,
		appointments: appointments,
		publisher:    publisher,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.ReminderWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reminders.worker: invalid cron spec, falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("reminders.worker started", zap.String(constvars.LoggingCronSpecKey, spec))
}

// Stop cancels the in-flight run and waits for it to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// runOnce returns the number of reminders published.
func (w *Worker) runOnce(ctx context.Context) int {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyReminderLeader, leaderLockTTL)
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed", zap.Error(err))
		return 0
	}
	if !acquired {
		w.log.Info("reminders.worker: another instance holds the leader lock")
		return 0
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyReminderLeader, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLeaderLock(refreshCtx, token)

	date := utils.Tomorrow()
	appointments, err := w.appointments.FindByDate(ctx, date)
	if err != nil {
		w.log.Warn("reminders.worker: listing appointments failed",
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		return 0
	}

	published := 0
	for i := range appointments {
		if ctx.Err() != nil {
			break
		}
		event := models.NewAppointmentEvent(constvars.EventAppointmentReminder, &appointments[i])
		markerKey := fmt.Sprintf(constvars.RedisKeyReminderSentFormat, event.AppointmentID, date)
		if !w.claimReminder(ctx, markerKey) {
			continue
		}
		if err := w.publisher.PublishAppointmentEvent(ctx, event); err != nil {
			w.log.Warn("reminders.worker: publishing reminder failed",
				zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
				zap.Error(err),
			)
			if err := w.sent.Delete(context.WithoutCancel(ctx), markerKey); err != nil {
				w.log.Warn("reminders.worker: clearing reminder marker failed",
					zap.String(constvars.LoggingRedisKey, markerKey),
					zap.Error(err),
				)
			}
			continue
		}
		published++
	}

	w.log.Info("reminders.worker: run finished",
		zap.String(constvars.LoggingDateKey, date),
		zap.Int(constvars.LoggingCountKey, published),
	)
	return published
}

// claimReminder reports whether this run owns the reminder behind key. When
// Redis cannot answer the reminder is skipped rather than risk a duplicate.
func (w *Worker) claimReminder(ctx context.Context, key string) bool {
	claimed, err := w.sent.TrySetNX(ctx, key, time.Now().Unix(), sentMarkerTTL)
	if err != nil {
		w.log.Warn("reminders.worker: reminder marker unavailable",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false
	}
	if !claimed {
		w.log.Debug("reminders.worker: reminder already sent",
			zap.String(constvars.LoggingRedisKey, key),
		)
	}
	return claimed
}

func (w *Worker) refreshLeaderLock(ctx context.Context, token string) {
	tick := time.NewTicker(leaderLockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeyReminderLeader, token, leaderLockTTL); err != nil {
				w.log.Warn("reminders.worker: refreshing leader lock failed", zap.Error(err))
			}
		}
	}
}
