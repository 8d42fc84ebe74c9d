package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/customer"
	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/hugohenrick/erp-assistencia/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const orderSelectColumns = `
	o.id, o.customer_id, o.device_type, o.device_brand, o.device_model,
	o.device_serial, o.reported_issue, o.technical_diagnosis, o.solution_applied,
	o.status, o.total_amount, o.technician_id, o.photos_before, o.photos_after,
	o.created_at, o.updated_at,
	c.id, c.name, c.document, c.phone, c.email, c.address, c.created_at, c.updated_at`

// OrderRepository implementa a interface order.Repository sobre PostgreSQL
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{
		db: db,
	}
}

// Create implementa order.Repository.Create. O número da OS é atribuído
// pela sequência anual dentro da mesma transação do INSERT.
func (r *OrderRepository) Create(ctx context.Context, o *order.ServiceOrder) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()

		if o.ID == "" {
			year := now.Year()
			var seq int
			err := tx.QueryRow(ctx,
				`INSERT INTO service_order_sequences (year, last_number)
				 VALUES ($1, 1)
				 ON CONFLICT (year)
				 DO UPDATE SET last_number = service_order_sequences.last_number + 1
				 RETURNING last_number`,
				year).Scan(&seq)
			if err != nil {
				return fmt.Errorf("erro ao obter sequência da OS: %w", err)
			}
			o.ID = order.FormatID(year, seq)
		} else {
			if err := order.ValidateID(o.ID); err != nil {
				return err
			}
		}

		o.Status = order.StatusPendingApproval
		o.CreatedAt = now
		o.UpdatedAt = now

		photosBefore, err := json.Marshal(o.PhotosBefore)
		if err != nil {
			return fmt.Errorf("erro ao converter fotos para JSON: %w", err)
		}

		photosAfter, err := json.Marshal(o.PhotosAfter)
		if err != nil {
			return fmt.Errorf("erro ao converter fotos para JSON: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO service_orders (
				id, customer_id, device_type, device_brand, device_model,
				device_serial, reported_issue, technical_diagnosis, solution_applied,
				status, total_amount, technician_id, photos_before, photos_after,
				created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
			)`,
			o.ID, o.CustomerID, o.DeviceType, o.DeviceBrand, o.DeviceModel,
			o.DeviceSerial, o.ReportedIssue, o.TechnicalDiagnosis, o.SolutionApplied,
			o.Status, totalAmountParam(o.TotalAmount), o.TechnicianID,
			photosBefore, photosAfter, o.CreatedAt, o.UpdatedAt)

		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return order.ErrDuplicateOrder
			}
			return fmt.Errorf("erro ao criar ordem de serviço: %w", err)
		}

		return nil
	})
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.ServiceOrder, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderSelectColumns+`
		 FROM service_orders o
		 LEFT JOIN customers c ON c.id = o.customer_id
		 WHERE o.id = $1`,
		id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ordem de serviço: %w", err)
	}

	return o, nil
}

// List implementa order.Repository.List: mais recentes primeiro
func (r *OrderRepository) List(ctx context.Context) ([]*order.ServiceOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderSelectColumns+`
		 FROM service_orders o
		 LEFT JOIN customers c ON c.id = o.customer_id
		 ORDER BY o.created_at DESC, o.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de serviço: %w", err)
	}
	defer rows.Close()

	var orders []*order.ServiceOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler ordem de serviço: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer ordens de serviço: %w", err)
	}

	return orders, nil
}

// Update implementa order.Repository.Update
func (r *OrderRepository) Update(ctx context.Context, id string, patch order.Patch) (*order.ServiceOrder, error) {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.Apply(patch); err != nil {
		return nil, err
	}

	photosBefore, err := json.Marshal(o.PhotosBefore)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter fotos para JSON: %w", err)
	}

	photosAfter, err := json.Marshal(o.PhotosAfter)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter fotos para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`UPDATE service_orders SET
			device_type = $2, device_brand = $3, device_model = $4,
			device_serial = $5, reported_issue = $6, technical_diagnosis = $7,
			solution_applied = $8, total_amount = $9, technician_id = $10,
			photos_before = $11, photos_after = $12, updated_at = $13
		 WHERE id = $1`,
		id, o.DeviceType, o.DeviceBrand, o.DeviceModel, o.DeviceSerial,
		o.ReportedIssue, o.TechnicalDiagnosis, o.SolutionApplied,
		totalAmountParam(o.TotalAmount), o.TechnicianID,
		photosBefore, photosAfter, o.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar ordem de serviço: %w", err)
	}

	return o, nil
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE service_orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da ordem de serviço: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// Delete implementa order.Repository.Delete. Remover um número
// inexistente é um no-op.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover ordem de serviço: %w", err)
	}
	return nil
}

// Count implementa order.Repository.Count
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM service_orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar ordens de serviço: %w", err)
	}
	return count, nil
}

// scanOrder lê uma linha do SELECT padrão de ordens, incluindo o
// cliente quando o join resolve
func scanOrder(row pgx.Row) (*order.ServiceOrder, error) {
	var o order.ServiceOrder
	var totalAmount decimal.NullDecimal
	var photosBeforeJSON, photosAfterJSON []byte
	var custID, custName, custDocument, custPhone, custEmail, custAddress *string
	var custCreatedAt, custUpdatedAt *time.Time

	err := row.Scan(
		&o.ID, &o.CustomerID, &o.DeviceType, &o.DeviceBrand, &o.DeviceModel,
		&o.DeviceSerial, &o.ReportedIssue, &o.TechnicalDiagnosis, &o.SolutionApplied,
		&o.Status, &totalAmount, &o.TechnicianID, &photosBeforeJSON, &photosAfterJSON,
		&o.CreatedAt, &o.UpdatedAt,
		&custID, &custName, &custDocument, &custPhone, &custEmail, &custAddress,
		&custCreatedAt, &custUpdatedAt)
	if err != nil {
		return nil, err
	}

	if totalAmount.Valid {
		amount := totalAmount.Decimal
		o.TotalAmount = &amount
	}

	if len(photosBeforeJSON) > 0 {
		if err := json.Unmarshal(photosBeforeJSON, &o.PhotosBefore); err != nil {
			return nil, fmt.Errorf("erro ao converter fotos: %w", err)
		}
	}

	if len(photosAfterJSON) > 0 {
		if err := json.Unmarshal(photosAfterJSON, &o.PhotosAfter); err != nil {
			return nil, fmt.Errorf("erro ao converter fotos: %w", err)
		}
	}

	if custID != nil {
		o.Customer = &customer.Customer{
			ID:       *custID,
			Name:     deref(custName),
			Document: deref(custDocument),
			Phone:    deref(custPhone),
			Email:    deref(custEmail),
			Address:  deref(custAddress),
		}
		if custCreatedAt != nil {
			o.Customer.CreatedAt = *custCreatedAt
		}
		if custUpdatedAt != nil {
			o.Customer.UpdatedAt = *custUpdatedAt
		}
	}

	return &o, nil
}

func totalAmountParam(amount *decimal.Decimal) interface{} {
	if amount == nil {
		return nil
	}
	return *amount
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
