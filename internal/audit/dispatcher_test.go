package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/scheduler-web/internal/logging"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
	block  chan struct{}
}

func (s *memorySink) Log(ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *memorySink) all() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, logging.Nop(), 10)

	id := int64(3)
	d.Dispatch(Event{Action: ActionAppointmentCreated, Entity: EntityAppointment, EntityID: &id})
	d.Dispatch(Event{Action: ActionAppointmentDeleted, Entity: EntityAppointment, EntityID: &id})
	d.Close()

	events := sink.all()
	require.Len(t, events, 2)
	assert.Equal(t, ActionAppointmentCreated, events[0].Action)
	assert.Equal(t, ActionAppointmentDeleted, events[1].Action)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sink := &memorySink{block: make(chan struct{})}
	core, logs := observer.New(zap.WarnLevel)
	d := NewDispatcher(sink, logging.NewZapLogger(zap.New(core).Sugar()), 1)

	// first event may be taken by the worker, then the queue fills up
	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: ActionAppointmentCreated})
	}
	close(sink.block)
	d.Close()

	assert.Less(t, len(sink.all()), 5)
	assert.GreaterOrEqual(t, logs.FilterMessage("audit queue full, dropping event").Len(), 1)
}

func TestDispatcherLogsSinkErrors(t *testing.T) {
	sink := &memorySink{err: errors.New("db down")}
	core, logs := observer.New(zap.ErrorLevel)
	d := NewDispatcher(sink, logging.NewZapLogger(zap.New(core).Sugar()), 10)

	d.Dispatch(Event{Action: ActionAppointmentListFailed})
	d.Close()

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "db down")
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, logging.Nop(), 10)
	d.Close()
	d.Close()

	d.Dispatch(Event{Action: ActionAppointmentCreated})

	assert.Empty(t, sink.all())
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{}) })
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewLogSink(logging.NewZapLogger(zap.New(core).Sugar()))

	id := int64(9)
	require.NoError(t, sink.Log(Event{
		VisitorID: "v1",
		Action:    ActionAppointmentDeleted,
		Entity:    EntityAppointment,
		EntityID:  &id,
		Metadata:  map[string]any{"status": 204},
	}))

	require.Equal(t, 1, logs.Len())
	msg := logs.All()[0].Message
	assert.Contains(t, msg, "action=appointment_deleted")
	assert.Contains(t, msg, "entity_id=9")
	assert.Contains(t, msg, `metadata={"status":204}`)
}

func TestToModel(t *testing.T) {
	m := toModel(Event{VisitorID: "v", Action: "a", Metadata: func() {}})
	assert.Equal(t, "", m.Metadata)
	assert.Equal(t, "v", m.VisitorID)
}
