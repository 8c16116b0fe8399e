package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/claricinhas/atelier-api/internal/domain"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
	"github.com/claricinhas/atelier-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, client_id, client_name, items_description, total_value, payment_method, installment_count, sale_date, created_at`

// Create persiste la venta y todas sus cuotas. Se asume llamada dentro de
// una tx (TxRunner); fuera de una tx cada insert confirma por separado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ClientID, sale.ClientName, sale.ItemsDescription,
		sale.TotalValue, sale.PaymentMethod, sale.InstallmentCount, sale.SaleDate, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, inst := range sale.Installments {
		_, err := r.q.Exec(ctx, `
			INSERT INTO installments (id, sale_id, sequence, amount, due_date, paid)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			inst.ID, sale.ID, inst.Sequence, inst.Amount, inst.DueDate, inst.Paid,
		)
		if err != nil {
			return fmt.Errorf("insert installment %d: %w", inst.Sequence, err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus cuotas. nil, nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	ctx := context.Background()
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ClientID, &s.ClientName, &s.ItemsDescription,
		&s.TotalValue, &s.PaymentMethod, &s.InstallmentCount, &s.SaleDate, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	installments, err := r.installmentsFor(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Installments = installments
	return &s, nil
}

// List lista ventas con sus cuotas, de la más reciente a la más vieja.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	ctx := context.Background()
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.ItemsDescription,
			&s.TotalValue, &s.PaymentMethod, &s.InstallmentCount, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		installments, err := r.installmentsFor(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Installments = installments
	}
	return list, nil
}

// Delete borra la venta; las cuotas caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// MarkInstallmentPaid actualiza el flag Paid de una cuota.
func (r *SaleRepo) MarkInstallmentPaid(saleID string, sequence int, paid bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE installments SET paid = $3 WHERE sale_id = $1 AND sequence = $2`,
		saleID, sequence, paid,
	)
	if err != nil {
		return fmt.Errorf("mark installment paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) installmentsFor(ctx context.Context, saleID string) ([]entity.Installment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, sale_id, sequence, amount, due_date, paid FROM installments WHERE sale_id = $1 ORDER BY sequence`,
		saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()
	var list []entity.Installment
	for rows.Next() {
		var inst entity.Installment
		if err := rows.Scan(&inst.ID, &inst.SaleID, &inst.Sequence, &inst.Amount, &inst.DueDate, &inst.Paid); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		list = append(list, inst)
	}
	return list, rows.Err()
}
