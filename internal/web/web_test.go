package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/scheduler-web/internal/dashboard"
	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/form"
	"github.com/BruksfildServices01/scheduler-web/internal/validators"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func TestFormatDatePtBR(t *testing.T) {
	tests := map[string]string{
		"2026-10-20": "20 de outubro de 2026",
		"2027-03-05": "05 de março de 2027",
		"2026-01-01": "01 de janeiro de 2026",
		"20/10/2026": "20/10/2026",
		"":           "",
		"2026-02-30": "2026-02-30",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDatePtBR(in), in)
	}
}

func TestCountAgendamentos(t *testing.T) {
	assert.Equal(t, "0 agendamentos", CountAgendamentos(0))
	assert.Equal(t, "1 agendamento", CountAgendamentos(1))
	assert.Equal(t, "2 agendamentos", CountAgendamentos(2))
}

func render(t *testing.T, v dashboard.View) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "base", gin.H{
		"View":             v,
		"SuccessTTLMillis": 3000,
	}))
	return buf.String()
}

func TestRenderList(t *testing.T) {
	id := int64(7)
	html := render(t, dashboard.View{
		Appointments: []appointment.Appointment{
			{ID: 7, Nome: "Ana Souza", Servico: "Corte", Data: "2026-10-20", Hora: "09:00"},
		},
		Success: "Agendamento criado com sucesso!",
		Modal:   dashboard.Modal{Open: true, ID: &id},
		Dark:    true,
		MinDate: "2026-10-14",
	})

	assert.Contains(t, html, `class="dark"`)
	assert.Contains(t, html, "Total: 1 agendamento")
	assert.Contains(t, html, "20 de outubro de 2026")
	assert.Contains(t, html, `action="/agendamentos/7/excluir"`)
	assert.Contains(t, html, "Agendamento criado com sucesso!")
	assert.Contains(t, html, "Confirmar Exclusão")
	assert.Contains(t, html, `min="2026-10-14"`)
	assert.Contains(t, html, BusinessHoursHint)
}

func TestRenderEmptyAndErrors(t *testing.T) {
	st, _ := form.New().Change(appointment.FieldNome, "Jo").Submit(fixedNow)
	html := render(t, dashboard.View{
		Error: "Erro de conexão. Verifique se a API está rodando.",
		Form:  st,
	})

	assert.Contains(t, html, "Nenhum agendamento encontrado!")
	assert.Contains(t, html, "Erro de conexão. Verifique se a API está rodando.")
	assert.Contains(t, html, validators.MsgNomeShort)
	assert.Contains(t, html, `value="Jo"`)
	assert.NotContains(t, html, "Confirmar Exclusão")
	assert.NotContains(t, html, `class="dark"`)
}

func TestRenderLoading(t *testing.T) {
	html := render(t, dashboard.View{LoadingList: true, Creating: true})

	assert.Contains(t, html, "Carregando agendamentos...")
	assert.Contains(t, html, "Criando agendamento...")
	assert.NotContains(t, html, "Nenhum agendamento encontrado!")
}
