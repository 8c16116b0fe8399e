package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

// La secuencia interna de cuotas es base 0; el recibo muestra base 1.
func TestInstallmentLabel_BaseUno(t *testing.T) {
	assert.Equal(t, "1/3", installmentLabel(0, 3))
	assert.Equal(t, "2/3", installmentLabel(1, 3))
	assert.Equal(t, "3/3", installmentLabel(2, 3))
}

func TestPaymentLabel(t *testing.T) {
	cases := []struct {
		method string
		count  int
		want   string
	}{
		{entity.PaymentCash, 1, "Efectivo"},
		{entity.PaymentPix, 1, "Pix"},
		{entity.PaymentDebit, 1, "Tarjeta débito"},
		{entity.PaymentCredit, 1, "Tarjeta crédito"},
		{entity.PaymentCredit, 3, "Tarjeta crédito (3 cuotas)"},
		{entity.PaymentInstallments, 4, "Crediario (4 cuotas)"},
	}
	for _, tc := range cases {
		sale := &entity.Sale{PaymentMethod: tc.method, InstallmentCount: tc.count}
		assert.Equal(t, tc.want, paymentLabel(sale), tc.method)
	}
}

func TestShortRef(t *testing.T) {
	assert.Equal(t, "A3F09B12", shortRef("a3f09b12-77aa-4bcd-9a01-0f4c2d8e1b22"))
	assert.Equal(t, "AB", shortRef("ab"))
}
