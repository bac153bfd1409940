package audit

import (
	"sync"

	"github.com/BruksfildServices01/scheduler-web/internal/logging"
)

const (
	ActionAppointmentCreated      = "appointment_created"
	ActionAppointmentCreateFailed = "appointment_create_failed"
	ActionAppointmentDeleted      = "appointment_deleted"
	ActionAppointmentDeleteFailed = "appointment_delete_failed"
	ActionAppointmentListFailed   = "appointment_list_failed"

	EntityAppointment = "appointment"
)

type Event struct {
	VisitorID string
	Action    string
	Entity    string
	EntityID  *int64
	Metadata  any
}

// Sink stores audit events.
type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink   Sink
	logger logging.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, logger logging.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.logger.Errorf("audit error: %v", err)
		}
	}
}

// Dispatch never blocks; events are dropped when the queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for queued ones to be stored.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
