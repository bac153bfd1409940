package web

import (
	"fmt"
	"time"
)

var monthsPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDatePtBR renders a YYYY-MM-DD date as "20 de outubro de 2026".
// Anything that does not parse is returned unchanged.
func FormatDatePtBR(data string) string {
	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		return data
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthsPtBR[t.Month()-1], t.Year())
}

// CountAgendamentos renders the list total with the right noun.
func CountAgendamentos(n int) string {
	if n == 1 {
		return "1 agendamento"
	}
	return fmt.Sprintf("%d agendamentos", n)
}
