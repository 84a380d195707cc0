package reminders

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeLocker struct {
	mu       sync.Mutex
	held     bool
	unlocked bool
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return false, "", nil
	}
	l.held = true
	return true, "token", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = false
	l.unlocked = true
	return nil
}

func (l *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type memoryMarkers struct {
	contracts.RedisRepository
	mu   sync.Mutex
	keys map[string]bool
	err  error
}

func newMemoryMarkers() *memoryMarkers {
	return &memoryMarkers{keys: make(map[string]bool)}
}

func (m *memoryMarkers) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	return true, nil
}

func (m *memoryMarkers) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}

type datedAppointments struct {
	contracts.AppointmentRepository
	byDate map[string][]models.Appointment
	asked  string
}

func (d *datedAppointments) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	d.asked = date
	return d.byDate[date], nil
}

type collectingPublisher struct {
	events []models.AppointmentEvent
	failOn string
}

func (c *collectingPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	if event.Patient == c.failOn {
		return errors.New("channel closed")
	}
	c.events = append(c.events, *event)
	return nil
}

func newTestWorker(locker *fakeLocker, markers *memoryMarkers, repo *datedAppointments, publisher *collectingPublisher) *Worker {
	cfg := &config.InternalConfig{App: config.App{ReminderWorkerCronSpec: "0 18 * * *"}}
	return NewWorker(zap.NewNop(), cfg, locker, markers, repo, publisher)
}

func tomorrowsAppointments() *datedAppointments {
	tomorrow := utils.Tomorrow()
	return &datedAppointments{byDate: map[string][]models.Appointment{
		tomorrow: {
			{ID: primitive.NewObjectID(), Patient: "Ana", Provider: "DraPsico", Date: tomorrow, Time: "10:00"},
			{ID: primitive.NewObjectID(), Patient: "Bruno", Provider: "DraPsico", Date: tomorrow, Time: "11:00"},
			{ID: primitive.NewObjectID(), Patient: "Carla", Provider: "DraPsico", Date: tomorrow, Time: "12:00"},
		},
	}}
}

func TestWorker_RunOncePublishesTomorrowsReminders(t *testing.T) {
	tomorrow := utils.Tomorrow()
	repo := tomorrowsAppointments()
	locker := &fakeLocker{}
	publisher := &collectingPublisher{failOn: "Bruno"}

	published := newTestWorker(locker, newMemoryMarkers(), repo, publisher).runOnce(context.Background())

	assert.Equal(t, 2, published)
	assert.Equal(t, tomorrow, repo.asked)
	for _, event := range publisher.events {
		assert.Equal(t, constvars.EventAppointmentReminder, event.Event)
		assert.Equal(t, tomorrow, event.Date)
	}
	assert.True(t, locker.unlocked)
	assert.False(t, locker.held)
}

func TestWorker_RunOnceSkipsWithoutLeadership(t *testing.T) {
	repo := &datedAppointments{}
	locker := &fakeLocker{held: true}
	publisher := &collectingPublisher{}

	published := newTestWorker(locker, newMemoryMarkers(), repo, publisher).runOnce(context.Background())

	assert.Zero(t, published)
	assert.Empty(t, repo.asked)
	assert.False(t, locker.unlocked)
}

func TestWorker_RunOnceTwiceSendsOneBatch(t *testing.T) {
	markers := newMemoryMarkers()
	publisher := &collectingPublisher{}
	worker := newTestWorker(&fakeLocker{}, markers, tomorrowsAppointments(), publisher)

	first := worker.runOnce(context.Background())
	second := worker.runOnce(context.Background())

	assert.Equal(t, 3, first)
	assert.Zero(t, second)
	assert.Len(t, publisher.events, 3)
	assert.Len(t, markers.keys, 3)
}

func TestWorker_FailedReminderIsRetriedOnNextRun(t *testing.T) {
	publisher := &collectingPublisher{failOn: "Bruno"}
	worker := newTestWorker(&fakeLocker{}, newMemoryMarkers(), tomorrowsAppointments(), publisher)

	assert.Equal(t, 2, worker.runOnce(context.Background()))

	publisher.failOn = ""
	assert.Equal(t, 1, worker.runOnce(context.Background()))
	require.Len(t, publisher.events, 3)
	assert.Equal(t, "Bruno", publisher.events[2].Patient)
}

func TestWorker_SkipsRemindersWhenMarkersUnavailable(t *testing.T) {
	markers := newMemoryMarkers()
	markers.err = errors.New("redis down")
	publisher := &collectingPublisher{}

	published := newTestWorker(&fakeLocker{}, markers, tomorrowsAppointments(), publisher).runOnce(context.Background())

	assert.Zero(t, published)
	assert.Empty(t, publisher.events)
}

func TestWorker_StartStop(t *testing.T) {
	worker := newTestWorker(&fakeLocker{}, newMemoryMarkers(), &datedAppointments{}, &collectingPublisher{})
	worker.cfg.App.ReminderWorkerCronSpec = "not a cron spec"

	worker.Start(context.Background())
	assert.Len(t, worker.cron.Entries(), 1)
	worker.Stop()
}
