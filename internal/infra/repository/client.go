package repository

import (
	"context"

	"atelier-backend/internal/infra"
	"atelier-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

const upsertClientSQL = `
INSERT INTO clients (id, name, email, phone)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET
    name  = COALESCE(NULLIF(EXCLUDED.name, ''), clients.name),
    phone = COALESCE(EXCLUDED.phone, clients.phone)
RETURNING id, name, email, phone, created_at`

// UpsertByEmail creates the client on first contact and refreshes
// name/phone on subsequent bookings with the same email.
func (r *ClientRepository) UpsertByEmail(ctx context.Context, name, email string, phone *string) (*readmodel.ClientRM, error) {
	var rm readmodel.ClientRM
	err := r.db.QueryRow(ctx, upsertClientSQL, uuid.New(), name, email, phone).
		Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert client", err)
	}
	return &rm, nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*readmodel.ClientRM, error) {
	var rm readmodel.ClientRM
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, created_at FROM clients WHERE email = $1`, email).
		Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by email", err)
	}
	return &rm, nil
}
