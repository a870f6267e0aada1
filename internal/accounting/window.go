package accounting

import (
	"errors"
	"time"
)

// Tipos de periodo aceptados por el reporte.
const (
	PeriodSemana = "semana"
	PeriodMes    = "mes"
)

// ErrMesAnioRequeridos se devuelve cuando se pide un reporte mensual
// sin mes o año.
var ErrMesAnioRequeridos = errors.New("mes y año requeridos")

// ErrPeriodoInvalido se devuelve ante un tipo de periodo desconocido.
var ErrPeriodoInvalido = errors.New("tipo de periodo inválido")

// Window es una ventana de fechas cerrada en ambos extremos.
// Un To en cero significa ventana abierta hacia adelante.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains indica si la fecha cae dentro de la ventana.
func (w Window) Contains(date time.Time) bool {
	if date.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && date.After(w.To) {
		return false
	}
	return true
}

// ResolveWindow traduce el periodo pedido a límites concretos de fechas:
// "semana" es la ventana móvil de los últimos 7 días desde now, y "mes"
// son los límites del mes calendario (mes, anio).
func ResolveWindow(tipo string, mes, anio int, now time.Time) (Window, error) {
	switch tipo {
	case PeriodSemana:
		return Window{From: now.AddDate(0, 0, -7)}, nil
	case PeriodMes:
		if mes < 1 || mes > 12 || anio == 0 {
			return Window{}, ErrMesAnioRequeridos
		}
		from := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, now.Location())
		to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return Window{From: from, To: to}, nil
	default:
		return Window{}, ErrPeriodoInvalido
	}
}
