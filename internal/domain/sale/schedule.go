// Package sale contiene servicios de dominio puros para ventas: la
// generación del cronograma de cuotas y la aritmética de meses calendario.
package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

// NeedsSchedule indica si la combinación método/cuotas genera cronograma:
// crediário siempre; crédito solo cuando se difiere en más de una cuota.
func NeedsSchedule(method string, count int) bool {
	if method == entity.PaymentInstallments {
		return true
	}
	return method == entity.PaymentCredit && count > 1
}

// GenerateSchedule produce las cuotas de una venta.
//
// Cada cuota vale round(total/count, 2), idéntico para todas. La suma puede
// diferir del total hasta count × 0.005 por el redondeo independiente; es el
// comportamiento histórico de la aplicación y los reportes lo asumen.
//
// El vencimiento de la cuota i es firstDue + i meses calendario, con el día
// ajustado al último día del mes cuando el mes destino es más corto
// (31/ene + 1 mes = 28 o 29/feb).
//
// Paid nace en true para crédito (la operadora liquida al comercio de
// inmediato) y en false para crediário (se cobra cuota a cuota).
func GenerateSchedule(total decimal.Decimal, count int, firstDue time.Time, method string) ([]entity.Installment, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	perInstallment := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	paid := method == entity.PaymentCredit

	installments := make([]entity.Installment, 0, count)
	for i := 0; i < count; i++ {
		installments = append(installments, entity.Installment{
			Sequence: i,
			Amount:   perInstallment,
			DueDate:  AddMonthsClamped(firstDue, i),
			Paid:     paid,
		})
	}
	return installments, nil
}

// AddMonthsClamped suma meses calendario preservando el día del mes; si el
// mes destino es más corto, devuelve su último día. time.AddDate no sirve
// aquí: desborda al mes siguiente (31/ene + 1 mes = 2 o 3/mar).
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	lastDay := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month())
	if d > lastDay {
		d = lastDay
	}
	h, min, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Día 0 del mes siguiente = último día de este mes.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
