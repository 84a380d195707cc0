package appointments

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memorySlotRepository enforces the unique (date, time) pair the way the
// mongo index does.
type memorySlotRepository struct {
	mu    sync.Mutex
	slots map[string]models.OccupiedSlot
	// failDeleteOnce is returned by the next DeleteOne call, then cleared.
	failDeleteOnce error
}

func newMemorySlotRepository() *memorySlotRepository {
	return &memorySlotRepository{slots: make(map[string]models.OccupiedSlot)}
}

func (m *memorySlotRepository) Insert(ctx context.Context, slot *models.OccupiedSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := slot.Date + " " + slot.Time
	if _, exists := m.slots[key]; exists {
		return exceptions.ErrSlotAlreadyOccupied(nil)
	}
	slot.ID = primitive.NewObjectID()
	m.slots[key] = *slot
	return nil
}

func (m *memorySlotRepository) Exists(ctx context.Context, date, slotTime string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.slots[date+" "+slotTime]
	return exists, nil
}

func (m *memorySlotRepository) FindOccupiedTimes(ctx context.Context, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var times []string
	for _, slot := range m.slots {
		if slot.Date == date {
			times = append(times, slot.Time)
		}
	}
	return times, nil
}

func (m *memorySlotRepository) DeleteByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for key, slot := range m.slots {
		if slot.AppointmentID == appointmentID {
			delete(m.slots, key)
			deleted++
		}
	}
	return deleted, nil
}

func (m *memorySlotRepository) DeleteOne(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failDeleteOnce; err != nil {
		m.failDeleteOnce = nil
		return 0, err
	}
	key := date + " " + slotTime
	slot, exists := m.slots[key]
	if !exists || slot.AppointmentID != appointmentID {
		return 0, nil
	}
	delete(m.slots, key)
	return 1, nil
}

func (m *memorySlotRepository) CountByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, slot := range m.slots {
		if slot.AppointmentID == appointmentID {
			count++
		}
	}
	return count, nil
}

func (m *memorySlotRepository) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}

type memoryAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[primitive.ObjectID]models.Appointment
	failCreate   error
}

func newMemoryAppointmentRepository() *memoryAppointmentRepository {
	return &memoryAppointmentRepository{appointments: make(map[primitive.ObjectID]models.Appointment)}
}

func (m *memoryAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate != nil {
		return m.failCreate
	}
	m.appointments[appointment.ID] = *appointment
	return nil
}

func (m *memoryAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appointment, exists := m.appointments[appointmentID]
	if !exists {
		return nil, nil
	}
	return &appointment, nil
}

func (m *memoryAppointmentRepository) FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.Appointment{}
	for _, appointment := range m.appointments {
		if appointment.Patient == patient {
			result = append(result, appointment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date+result[i].Time > result[j].Date+result[j].Time
	})
	return result, nil
}

func (m *memoryAppointmentRepository) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.Appointment{}
	for _, appointment := range m.appointments {
		if appointment.Date == date {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (m *memoryAppointmentRepository) UpdateSlot(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	appointment, exists := m.appointments[appointmentID]
	if !exists {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	now := time.Now()
	appointment.Date, appointment.Time, appointment.UpdatedAt = date, slotTime, &now
	m.appointments[appointmentID] = appointment
	return nil
}

func (m *memoryAppointmentRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.appointments[appointmentID]; !exists {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	delete(m.appointments, appointmentID)
	return nil
}

func (m *memoryAppointmentRepository) CountByDateAndStatus(ctx context.Context, date, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, appointment := range m.appointments {
		if appointment.Date == date && appointment.Status == status {
			count++
		}
	}
	return count, nil
}

type memoryMessageRepository struct {
	mu       sync.Mutex
	messages []models.Message
}

func (m *memoryMessageRepository) Create(ctx context.Context, message *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	message.ID = primitive.NewObjectID()
	m.messages = append(m.messages, *message)
	return nil
}

func (m *memoryMessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Message{}, m.messages...), nil
}

func (m *memoryMessageRepository) FindBySender(ctx context.Context, sender string) ([]models.Message, error) {
	return nil, errors.New("not used")
}

func (m *memoryMessageRepository) FindByRecipient(ctx context.Context, recipient string) ([]models.Message, error) {
	return nil, errors.New("not used")
}

func (m *memoryMessageRepository) FindByParticipant(ctx context.Context, name string) ([]models.Message, error) {
	return nil, errors.New("not used")
}

func (m *memoryMessageRepository) Update(ctx context.Context, messageID primitive.ObjectID, subject, text string) error {
	return errors.New("not used")
}

func (m *memoryMessageRepository) MarkRead(ctx context.Context, messageID primitive.ObjectID) error {
	return errors.New("not used")
}

func (m *memoryMessageRepository) DeleteByID(ctx context.Context, messageID primitive.ObjectID) error {
	return errors.New("not used")
}

func (m *memoryMessageRepository) CountUnread(ctx context.Context, recipient, messageType string) (int64, error) {
	return 0, errors.New("not used")
}

// directTransactor behaves like a standalone mongo server: no rollback.
type directTransactor struct{}

func (directTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memoryLocker struct {
	mu    sync.Mutex
	held  map[string]string
	calls int
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: make(map[string]string)}
}

func (l *memoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if _, exists := l.held[key]; exists {
		return false, "", nil
	}
	value := primitive.NewObjectID().Hex()
	l.held[key] = value
	return true, value, nil
}

func (l *memoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
	}
	return nil
}

func (l *memoryLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.AppointmentEvent
	err    error
}

func (p *recordingPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, *event)
	return nil
}
