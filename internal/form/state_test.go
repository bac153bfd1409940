package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/validators"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func filled() State {
	return New().
		Change(appointment.FieldNome, "Ana Souza").
		Change(appointment.FieldServico, "Corte").
		Change(appointment.FieldData, "2026-10-20").
		Change(appointment.FieldHora, "10:00")
}

func TestSubmitValid(t *testing.T) {
	next, ok := filled().Submit(now)

	assert.True(t, ok)
	assert.False(t, next.Errors.HasErrors())
	for _, f := range appointment.Fields {
		assert.True(t, next.IsTouched(f), f)
	}
}

func TestSubmitInvalidTouchesAndValidatesAll(t *testing.T) {
	s := New().Change(appointment.FieldNome, "Jo")

	next, ok := s.Submit(now)

	assert.False(t, ok)
	assert.Equal(t, validators.MsgNomeShort, next.Visible(appointment.FieldNome))
	assert.Equal(t, validators.MsgServicoRequired, next.Visible(appointment.FieldServico))
	assert.Equal(t, validators.MsgDataRequired, next.Visible(appointment.FieldData))
	assert.Equal(t, validators.MsgHoraRequired, next.Visible(appointment.FieldHora))
	assert.Equal(t, "Jo", next.Draft.Nome, "draft is kept")
}

func TestChangeClearsErrorOnlyWhenTouched(t *testing.T) {
	invalid, _ := New().Submit(now)

	// touched by submit: typing clears the message
	next := invalid.Change(appointment.FieldNome, "A")
	assert.Empty(t, next.Errors.Nome)
	assert.Equal(t, validators.MsgServicoRequired, next.Errors.Servico)

	// not touched: error stays
	untouched := State{Errors: validators.Errors{Hora: validators.MsgHoraRange}}
	next = untouched.Change(appointment.FieldHora, "09:00")
	assert.Equal(t, validators.MsgHoraRange, next.Errors.Hora)
	assert.Empty(t, next.Visible(appointment.FieldHora))
}

func TestBlurDoesNotValidate(t *testing.T) {
	s := New().Blur(appointment.FieldNome)

	assert.True(t, s.IsTouched(appointment.FieldNome))
	assert.False(t, s.Errors.HasErrors())
}

func TestTransitionsDoNotMutate(t *testing.T) {
	base := New().Blur(appointment.FieldNome)

	_ = base.Blur(appointment.FieldHora)
	_, _ = base.Submit(now)
	_ = base.Change(appointment.FieldNome, "changed")

	assert.False(t, base.IsTouched(appointment.FieldHora))
	assert.Empty(t, base.Draft.Nome)
	assert.False(t, base.Errors.HasErrors())
}

func TestReset(t *testing.T) {
	s, _ := filled().Submit(now)

	r := s.Reset()

	assert.Equal(t, appointment.Draft{}, r.Draft)
	assert.Empty(t, r.Touched)
	assert.False(t, r.Errors.HasErrors())
}

func TestApply(t *testing.T) {
	s := New().
		Apply(Event{Type: EventChange, Field: appointment.FieldServico, Value: "Barba"}).
		Apply(Event{Type: EventBlur, Field: appointment.FieldServico}).
		Apply(Event{Type: "unknown", Field: appointment.FieldNome})

	assert.Equal(t, "Barba", s.Draft.Servico)
	assert.True(t, s.IsTouched(appointment.FieldServico))
	assert.False(t, s.IsTouched(appointment.FieldNome))
}
