package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fleximart/retail-etl/internal/db"
	"github.com/fleximart/retail-etl/internal/domain"
)

const upsertCustomerSQL = `
INSERT INTO customers (first_name, last_name, email, phone, city, registration_date)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (email) DO UPDATE SET
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    phone = EXCLUDED.phone,
    city = EXCLUDED.city,
    registration_date = EXCLUDED.registration_date
RETURNING customer_id`

type customerRepository struct {
	conn *db.Connection
}

// NewCustomerRepository creates a customer repository backed by Postgres.
func NewCustomerRepository(conn *db.Connection) CustomerRepository {
	return &customerRepository{conn: conn}
}

func (r *customerRepository) UpsertAll(ctx context.Context, customers []domain.Customer) (map[string]int64, error) {
	mapping := make(map[string]int64, len(customers))

	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		for _, c := range customers {
			registrationDate, err := nullDate(c.RegistrationDate)
			if err != nil {
				return fmt.Errorf("customer %s: %w", c.Email, err)
			}

			var id int64
			if err := tx.QueryRow(ctx, upsertCustomerSQL,
				nullText(c.FirstName),
				nullText(c.LastName),
				c.Email,
				nullText(c.Phone),
				nullText(c.City),
				registrationDate,
			).Scan(&id); err != nil {
				return fmt.Errorf("failed to upsert customer %s: %w", c.Email, err)
			}

			mapping[c.SourceKey] = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapping, nil
}
