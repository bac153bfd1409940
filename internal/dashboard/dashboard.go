package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/form"
	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
	"github.com/BruksfildServices01/scheduler-web/internal/logging"
	"github.com/BruksfildServices01/scheduler-web/internal/preference"
	"github.com/BruksfildServices01/scheduler-web/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/scheduler-web/internal/usecase/appointment"
)

const (
	MsgCreated = "Agendamento criado com sucesso!"
	MsgDeleted = "Agendamento excluído com sucesso!"

	DefaultSuccessTTL = 3 * time.Second
)

// ======================================================
// DEPENDENCIES
// ======================================================

type UseCases struct {
	List   *ucAppointment.ListAppointments
	Create *ucAppointment.CreateAppointment
	Delete *ucAppointment.DeleteAppointment
}

type Options struct {
	SuccessTTL time.Duration

	// After schedules f once d has elapsed. Defaults to time.AfterFunc.
	After func(d time.Duration, f func())

	// Now is the clock used for date validation. Defaults to timezone.Now.
	Now func() time.Time
}

// ======================================================
// STATE
// ======================================================

// Modal is the delete confirmation dialog. ID is nil when nothing is
// pending.
type Modal struct {
	Open bool
	ID   *int64
}

// Dashboard is the page state of one visitor. The mutex only guards the
// fields; no remote call is made while it is held.
type Dashboard struct {
	visitorID string
	uc        UseCases
	settings  *preference.Settings
	logger    logging.Logger

	successTTL time.Duration
	after      func(time.Duration, func())
	now        func() time.Time

	mu           sync.Mutex
	mounted      bool
	appointments []appointment.Appointment
	loadingList  bool
	creating     bool
	deleting     bool
	errMsg       string
	success      string
	successSeq   uint64
	modal        Modal
	form         form.State
}

func New(
	visitorID string,
	uc UseCases,
	settings *preference.Settings,
	logger logging.Logger,
	opts Options,
) *Dashboard {
	if opts.SuccessTTL <= 0 {
		opts.SuccessTTL = DefaultSuccessTTL
	}
	if opts.After == nil {
		opts.After = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if opts.Now == nil {
		opts.Now = timezone.Now
	}

	return &Dashboard{
		visitorID:   visitorID,
		uc:          uc,
		settings:    settings,
		logger:      logger.With("visitor_id", visitorID),
		successTTL:  opts.SuccessTTL,
		after:       opts.After,
		now:         opts.Now,
		loadingList: true,
		form:        form.New(),
	}
}

func (d *Dashboard) VisitorID() string {
	return d.visitorID
}

// ======================================================
// LIST
// ======================================================

// Mount runs on the first page view of a session: it reads the theme
// preference and fetches the list. Later calls do nothing.
func (d *Dashboard) Mount(ctx context.Context, systemDark bool) {
	d.mu.Lock()
	if d.mounted {
		d.mu.Unlock()
		return
	}
	d.mounted = true
	d.mu.Unlock()

	d.settings.Load(ctx, systemDark)
	d.Load(ctx)
}

// Load clears the error banner and fetches the list. A failure is shown in
// the banner and not returned.
func (d *Dashboard) Load(ctx context.Context) {
	d.mu.Lock()
	d.loadingList = true
	d.errMsg = ""
	d.mu.Unlock()

	list, err := d.uc.List.Execute(ctx, d.visitorID)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadingList = false
	if err != nil {
		d.errMsg = httperr.Message(err)
		d.logger.Errorf("erro ao carregar agendamentos: %v", err)
		return
	}
	d.appointments = list
}

// ======================================================
// FORM
// ======================================================

func (d *Dashboard) ChangeField(f appointment.Field, value string) form.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = d.form.Change(f, value)
	return d.form
}

func (d *Dashboard) BlurField(f appointment.Field) form.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = d.form.Blur(f)
	return d.form
}

func (d *Dashboard) ApplyFormEvent(ev form.Event) form.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = d.form.Apply(ev)
	return d.form
}

// Submit takes the values posted by the form, validates them and creates the
// appointment. A validation failure returns a CodeValidationFailed business
// error and leaves the remote API untouched. A creation failure is shown in
// the banner and returned; the draft is kept either way.
func (d *Dashboard) Submit(ctx context.Context, draft appointment.Draft) (*appointment.Appointment, error) {
	d.mu.Lock()
	if d.creating {
		d.mu.Unlock()
		return nil, httperr.ErrBusiness(httperr.CodeRequestInFlight)
	}

	st := d.form
	for _, f := range appointment.Fields {
		st = st.Change(f, draft.Get(f))
	}
	st, ok := st.Submit(d.now())
	d.form = st
	if !ok {
		d.mu.Unlock()
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	d.creating = true
	d.errMsg = ""
	d.success = ""
	d.mu.Unlock()

	ap, err := d.uc.Create.Execute(ctx, d.visitorID, st.Draft)
	if err != nil {
		d.mu.Lock()
		d.creating = false
		d.errMsg = httperr.Message(err)
		d.mu.Unlock()
		d.logger.Errorf("erro ao criar agendamento: %v", err)
		return nil, err
	}

	d.Load(ctx)

	d.mu.Lock()
	d.creating = false
	d.form = d.form.Reset()
	d.mu.Unlock()
	d.flash(MsgCreated)

	return ap, nil
}

// ======================================================
// DELETE
// ======================================================

func (d *Dashboard) RequestDelete(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modal = Modal{Open: true, ID: &id}
}

func (d *Dashboard) CancelDelete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modal = Modal{}
}

// ConfirmDelete deletes the appointment held by the modal. Without a pending
// id it returns a CodeNoPendingDelete business error and does nothing. A
// remote failure is only shown in the banner; the modal stays open.
func (d *Dashboard) ConfirmDelete(ctx context.Context) error {
	d.mu.Lock()
	if d.modal.ID == nil {
		d.mu.Unlock()
		return httperr.ErrBusiness(httperr.CodeNoPendingDelete)
	}
	if d.deleting {
		d.mu.Unlock()
		return httperr.ErrBusiness(httperr.CodeRequestInFlight)
	}
	id := *d.modal.ID
	d.deleting = true
	d.errMsg = ""
	d.success = ""
	d.mu.Unlock()

	if err := d.uc.Delete.Execute(ctx, d.visitorID, id); err != nil {
		d.mu.Lock()
		d.deleting = false
		d.errMsg = httperr.Message(err)
		d.mu.Unlock()
		d.logger.Errorf("erro ao excluir agendamento %d: %v", id, err)
		return nil
	}

	d.Load(ctx)

	d.mu.Lock()
	d.deleting = false
	d.modal = Modal{}
	d.mu.Unlock()
	d.flash(MsgDeleted)

	return nil
}

// ======================================================
// BANNERS
// ======================================================

func (d *Dashboard) DismissError() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errMsg = ""
}

// flash shows msg and clears it after successTTL, unless a newer message
// replaced it in the meantime.
func (d *Dashboard) flash(msg string) {
	d.mu.Lock()
	d.successSeq++
	seq := d.successSeq
	d.success = msg
	d.mu.Unlock()

	d.after(d.successTTL, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.successSeq == seq {
			d.success = ""
		}
	})
}

// ======================================================
// THEME
// ======================================================

func (d *Dashboard) ToggleTheme(ctx context.Context) (bool, error) {
	return d.settings.Toggle(ctx)
}

func (d *Dashboard) Settings() *preference.Settings {
	return d.settings
}
