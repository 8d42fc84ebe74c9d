package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-assistencia/internal/domain/product"
	"github.com/hugohenrick/erp-assistencia/internal/domain/sale"
	"github.com/hugohenrick/erp-assistencia/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create. A venda e seus itens são
// gravados na mesma transação, junto com a baixa de estoque.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		var customerID interface{}
		if s.CustomerID != "" {
			customerID = s.CustomerID
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO sales (
				id, customer_id, total_amount, discount, payment_method, status,
				seller_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8
			)`,
			s.ID, customerID, s.TotalAmount, s.Discount, s.PaymentMethod,
			s.Status, s.SellerID, s.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao criar venda: %w", err)
		}

		for _, item := range s.Items {
			_, err = tx.Exec(ctx,
				`INSERT INTO sale_items (
					id, sale_id, product_id, quantity, unit_price, total_price
				) VALUES (
					$1, $2, $3, $4, $5, $6
				)`,
				item.ID, s.ID, item.ProductID, item.Quantity, item.UnitPrice,
				item.TotalPrice)
			if err != nil {
				return fmt.Errorf("erro ao gravar item da venda: %w", err)
			}

			// Baixa de estoque do produto vendido
			tag, err := tx.Exec(ctx,
				`UPDATE products SET quantity = quantity - $2, updated_at = now()
				 WHERE id = $1 AND quantity >= $2`,
				item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("erro ao baixar estoque: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: produto %s", product.ErrInsufficientStock, item.ProductID)
			}
		}

		return nil
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale
	var customerID *string

	err := r.db.QueryRow(ctx,
		`SELECT id, customer_id, total_amount, discount, payment_method,
			status, seller_id, created_at
		 FROM sales WHERE id = $1`,
		id).Scan(
		&s.ID, &customerID, &s.TotalAmount, &s.Discount, &s.PaymentMethod,
		&s.Status, &s.SellerID, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if customerID != nil {
		s.CustomerID = *customerID
	}

	items, err := r.findItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_id, total_amount, discount, payment_method,
			status, seller_id, created_at
		 FROM sales
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale
	for rows.Next() {
		var s sale.Sale
		var customerID *string
		err := rows.Scan(
			&s.ID, &customerID, &s.TotalAmount, &s.Discount, &s.PaymentMethod,
			&s.Status, &s.SellerID, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		if customerID != nil {
			s.CustomerID = *customerID
		}
		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}

	for _, s := range sales {
		items, err := r.findItems(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}

	return sales, nil
}

// UpdateStatus implementa sale.Repository.UpdateStatus
func (r *SaleRepository) UpdateStatus(ctx context.Context, id string, status sale.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sales SET status = $2 WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da venda: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]sale.SaleItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, quantity, unit_price, total_price
		 FROM sale_items WHERE sale_id = $1`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	var items []sale.SaleItem
	for rows.Next() {
		var item sale.SaleItem
		err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer itens da venda: %w", err)
	}

	return items, nil
}
