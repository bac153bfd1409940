package validators

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/timezone"
)

const (
	minTextLen = 3
	maxTextLen = 100

	// business hours, minutes since midnight, end exclusive
	openMinute  = 8 * 60
	closeMinute = 18 * 60
)

// Messages shown next to each field.
const (
	MsgNomeRequired = "Nome é obrigatório"
	MsgNomeShort    = "Nome deve ter pelo menos 3 caracteres"
	MsgNomeLong     = "Nome deve ter no máximo 100 caracteres"

	MsgServicoRequired = "Serviço é obrigatório"
	MsgServicoShort    = "Serviço deve ter pelo menos 3 caracteres"
	MsgServicoLong     = "Serviço deve ter no máximo 100 caracteres"

	MsgDataRequired = "Data é obrigatória"
	// The field expects YYYY-MM-DD; the wording is kept as users know it.
	MsgDataFormat  = "Data inválida. Use o formato DD/MM/AAAA"
	MsgDataInvalid = "Data inválida"
	MsgDataPast    = "Data não pode ser no passado"

	MsgHoraRequired = "Hora é obrigatória"
	MsgHoraFormat   = "Hora inválida. Use o formato HH:mm"
	MsgHoraRange    = "Horário deve ser entre 08:00 e 18:00"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// isTrimSpace matches what browsers strip with String.prototype.trim, which
// differs from unicode.IsSpace on U+FEFF and U+0085.
func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func validateText(s, required, short, long string) string {
	trimmed := strings.TrimFunc(s, isTrimSpace)
	n := utf8.RuneCountInString(trimmed)

	switch {
	case n == 0:
		return required
	case n < minTextLen:
		return short
	case n > maxTextLen:
		return long
	}
	return ""
}

// ValidateNome returns the error for a person name, or "" when valid.
func ValidateNome(s string) string {
	return validateText(s, MsgNomeRequired, MsgNomeShort, MsgNomeLong)
}

// ValidateServico returns the error for a service description, or "" when valid.
func ValidateServico(s string) string {
	return validateText(s, MsgServicoRequired, MsgServicoShort, MsgServicoLong)
}

// ValidateData checks s against today in the application timezone.
func ValidateData(s string) string {
	return ValidateDataAt(s, timezone.Now())
}

// ValidateDataAt checks s against the calendar day of now. A date equal to
// that day is accepted whatever the time of day.
func ValidateDataAt(s string, now time.Time) string {
	if s == "" {
		return MsgDataRequired
	}
	if !dateRe.MatchString(s) {
		return MsgDataFormat
	}

	selected, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return MsgDataInvalid
	}

	if selected.Before(timezone.StartOfDay(now)) {
		return MsgDataPast
	}
	return ""
}

// ValidateHora accepts HH:mm (or H:mm) within [08:00, 18:00).
func ValidateHora(s string) string {
	if s == "" {
		return MsgHoraRequired
	}
	if !timeRe.MatchString(s) {
		return MsgHoraFormat
	}

	hh, mm, _ := strings.Cut(s, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)

	total := h*60 + m
	if total < openMinute || total >= closeMinute {
		return MsgHoraRange
	}
	return ""
}

// ValidateForm runs every field rule; no rule is skipped.
func ValidateForm(nome, servico, data, hora string) Errors {
	return ValidateFormAt(nome, servico, data, hora, timezone.Now())
}

func ValidateFormAt(nome, servico, data, hora string, now time.Time) Errors {
	return Errors{
		Nome:    ValidateNome(nome),
		Servico: ValidateServico(servico),
		Data:    ValidateDataAt(data, now),
		Hora:    ValidateHora(hora),
	}
}

func ValidateDraft(d appointment.Draft) Errors {
	return ValidateForm(d.Nome, d.Servico, d.Data, d.Hora)
}

func ValidateDraftAt(d appointment.Draft, now time.Time) Errors {
	return ValidateFormAt(d.Nome, d.Servico, d.Data, d.Hora, now)
}

// ValidateField runs the rule of a single field.
func ValidateField(f appointment.Field, v string, now time.Time) string {
	switch f {
	case appointment.FieldNome:
		return ValidateNome(v)
	case appointment.FieldServico:
		return ValidateServico(v)
	case appointment.FieldData:
		return ValidateDataAt(v, now)
	case appointment.FieldHora:
		return ValidateHora(v)
	}
	return ""
}
