package identity

import (
	"context"
	"strings"

	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/pgconv"
	"bookingcore/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Resolver finds or creates customer records keyed by (business, email).
// The insert races benignly: on a duplicate key the existing row is read
// back, so concurrent bookings by the same customer converge on one record.
type Resolver struct {
	db infra.DBTX
}

func NewResolver(db infra.DBTX) *Resolver {
	return &Resolver{db: db}
}

const findCustomerSQL = `
SELECT id, business_id, name, email, phone
FROM customers
WHERE business_id = $1 AND lower(email) = lower($2)`

const insertCustomerSQL = `
INSERT INTO customers (id, business_id, name, email, phone)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, business_id, name, email, phone`

func (r *Resolver) ResolveOrCreate(ctx context.Context, businessID uuid.UUID, in commands.CustomerInput) (*commands.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	customer, err := r.scan(r.db.QueryRow(ctx, findCustomerSQL, businessID, email))
	if err == nil {
		return customer, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}

	customer, err = r.scan(r.db.QueryRow(ctx, insertCustomerSQL,
		uuid.New(), businessID, in.Name, email, pgconv.StringPtrToPgtype(in.Phone),
	))
	if err == nil {
		return customer, nil
	}

	wrapped := infra.WrapRepoErr("failed to create customer", err)
	if !infra.IsKind(wrapped, infra.KindDuplicateKey) {
		return nil, wrapped
	}

	// Lost the insert race, the winner's row is what we want.
	customer, err = r.scan(r.db.QueryRow(ctx, findCustomerSQL, businessID, email))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer after duplicate insert", err)
	}
	return customer, nil
}

func (r *Resolver) scan(row interface{ Scan(dest ...any) error }) (*commands.Customer, error) {
	var (
		c     commands.Customer
		phone pgtype.Text
	)
	if err := row.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Email, &phone); err != nil {
		return nil, err
	}
	c.Phone = pgconv.StringPtrFromPgtype(phone)
	return &c, nil
}
