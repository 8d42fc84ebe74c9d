package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-assistencia/internal/domain/financial"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FinancialRepository implementa a interface financial.Repository
type FinancialRepository struct {
	db *pgxpool.Pool
}

// NewFinancialRepository cria uma nova instância de FinancialRepository
func NewFinancialRepository(db *pgxpool.Pool) financial.Repository {
	return &FinancialRepository{
		db: db,
	}
}

// Create implementa financial.Repository.Create
func (r *FinancialRepository) Create(ctx context.Context, t *financial.Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO financial_transactions (
			id, type, category, description, amount, due_date, paid_date,
			status, payment_method, reference_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		t.ID, t.Type, t.Category, t.Description, t.Amount, t.DueDate,
		t.PaidDate, t.Status, t.PaymentMethod, t.ReferenceID, t.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar lançamento financeiro: %w", err)
	}

	return nil
}

// FindByID implementa financial.Repository.FindByID
func (r *FinancialRepository) FindByID(ctx context.Context, id string) (*financial.Transaction, error) {
	var t financial.Transaction

	err := r.db.QueryRow(ctx,
		`SELECT id, type, category, description, amount, due_date, paid_date,
			status, payment_method, reference_id, created_at
		 FROM financial_transactions WHERE id = $1`,
		id).Scan(
		&t.ID, &t.Type, &t.Category, &t.Description, &t.Amount, &t.DueDate,
		&t.PaidDate, &t.Status, &t.PaymentMethod, &t.ReferenceID, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, financial.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lançamento financeiro: %w", err)
	}

	return &t, nil
}

// List implementa financial.Repository.List
func (r *FinancialRepository) List(ctx context.Context, limit, offset int) ([]*financial.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, category, description, amount, due_date, paid_date,
			status, payment_method, reference_id, created_at
		 FROM financial_transactions
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos financeiros: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// FindOverdue implementa financial.Repository.FindOverdue
func (r *FinancialRepository) FindOverdue(ctx context.Context) ([]*financial.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, category, description, amount, due_date, paid_date,
			status, payment_method, reference_id, created_at
		 FROM financial_transactions
		 WHERE status = $1 AND due_date < now()
		 ORDER BY due_date`,
		financial.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos vencidos: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Update implementa financial.Repository.Update
func (r *FinancialRepository) Update(ctx context.Context, t *financial.Transaction) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE financial_transactions SET
			type = $2, category = $3, description = $4, amount = $5,
			due_date = $6, paid_date = $7, status = $8, payment_method = $9,
			reference_id = $10
		 WHERE id = $1`,
		t.ID, t.Type, t.Category, t.Description, t.Amount, t.DueDate,
		t.PaidDate, t.Status, t.PaymentMethod, t.ReferenceID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lançamento financeiro: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return financial.ErrTransactionNotFound
	}

	return nil
}

// Delete implementa financial.Repository.Delete
func (r *FinancialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM financial_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover lançamento financeiro: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return financial.ErrTransactionNotFound
	}

	return nil
}

// Count implementa financial.Repository.Count
func (r *FinancialRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM financial_transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar lançamentos financeiros: %w", err)
	}
	return count, nil
}

func scanTransactions(rows pgx.Rows) ([]*financial.Transaction, error) {
	var transactions []*financial.Transaction
	for rows.Next() {
		var t financial.Transaction
		err := rows.Scan(
			&t.ID, &t.Type, &t.Category, &t.Description, &t.Amount, &t.DueDate,
			&t.PaidDate, &t.Status, &t.PaymentMethod, &t.ReferenceID, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lançamento financeiro: %w", err)
		}
		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer lançamentos financeiros: %w", err)
	}

	return transactions, nil
}
