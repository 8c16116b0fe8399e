package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 100.00 en 3 cuotas: cada una 33.33, suma 99.99 (el redondeo se aplica
// idéntico a todas las cuotas, no se ajusta la última).
func TestGenerateSchedule_RedondeoIdenticoPorCuota(t *testing.T) {
	total := decimal.RequireFromString("100.00")
	first := date(2026, time.March, 10)

	installments, err := GenerateSchedule(total, 3, first, entity.PaymentInstallments)
	require.NoError(t, err)
	require.Len(t, installments, 3)

	expected := decimal.RequireFromString("33.33")
	sum := decimal.Zero
	for i, inst := range installments {
		assert.Equal(t, i, inst.Sequence)
		assert.True(t, expected.Equal(inst.Amount), "cuota %d debe ser 33.33, fue %s", i, inst.Amount)
		assert.False(t, inst.Paid, "crediário nace sin pagar")
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, decimal.RequireFromString("99.99").Equal(sum), "la suma conserva el gap de redondeo")
}

func TestGenerateSchedule_VencimientosMensuales(t *testing.T) {
	first := date(2026, time.March, 10)
	installments, err := GenerateSchedule(decimal.RequireFromString("90.00"), 3, first, entity.PaymentInstallments)
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.March, 10), installments[0].DueDate)
	assert.Equal(t, date(2026, time.April, 10), installments[1].DueDate)
	assert.Equal(t, date(2026, time.May, 10), installments[2].DueDate)
}

// 31 de enero + 1 mes debe caer en el último día de febrero, no desbordar a marzo.
func TestGenerateSchedule_ClampFinDeFebrero(t *testing.T) {
	first := date(2026, time.January, 31)
	installments, err := GenerateSchedule(decimal.RequireFromString("200.00"), 2, first, entity.PaymentInstallments)
	require.NoError(t, err)
	require.Len(t, installments, 2)

	assert.Equal(t, date(2026, time.January, 31), installments[0].DueDate)
	assert.Equal(t, date(2026, time.February, 28), installments[1].DueDate)
}

func TestGenerateSchedule_ClampFebreroBisiesto(t *testing.T) {
	first := date(2028, time.January, 31)
	installments, err := GenerateSchedule(decimal.RequireFromString("200.00"), 2, first, entity.PaymentInstallments)
	require.NoError(t, err)

	assert.Equal(t, date(2028, time.February, 29), installments[1].DueDate)
}

// Crédito en cuotas nace pagado: la operadora ya liquidó el total al comercio.
func TestGenerateSchedule_CreditoNacePagado(t *testing.T) {
	installments, err := GenerateSchedule(decimal.RequireFromString("60.00"), 2, date(2026, time.May, 5), entity.PaymentCredit)
	require.NoError(t, err)
	for _, inst := range installments {
		assert.True(t, inst.Paid)
	}
}

func TestGenerateSchedule_CountInvalido(t *testing.T) {
	_, err := GenerateSchedule(decimal.RequireFromString("10.00"), 0, date(2026, time.May, 5), entity.PaymentInstallments)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = GenerateSchedule(decimal.RequireFromString("-1.00"), 2, date(2026, time.May, 5), entity.PaymentInstallments)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNeedsSchedule(t *testing.T) {
	assert.True(t, NeedsSchedule(entity.PaymentInstallments, 1))
	assert.True(t, NeedsSchedule(entity.PaymentCredit, 2))
	assert.False(t, NeedsSchedule(entity.PaymentCredit, 1))
	assert.False(t, NeedsSchedule(entity.PaymentCash, 3))
	assert.False(t, NeedsSchedule(entity.PaymentPix, 1))
}

func TestAddMonthsClamped_DiaPreservado(t *testing.T) {
	got := AddMonthsClamped(date(2026, time.May, 15), 3)
	assert.Equal(t, date(2026, time.August, 15), got)
}

func TestAddMonthsClamped_CruceDeAnio(t *testing.T) {
	got := AddMonthsClamped(date(2026, time.November, 30), 3)
	assert.Equal(t, date(2027, time.February, 28), got)
}
