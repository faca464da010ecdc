package repository

import (
	"context"
	"fmt"

	"hawc-booking/internal/data/entity"
	"hawc-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	// FindPendingInvoiceRequests lists professional accounts still waiting
	// for invoice approval.
	FindPendingInvoiceRequests(ctx context.Context) ([]*entity.Account, error)
	UpdateInvoiceApproval(ctx context.Context, id string, state entity.InvoiceApproval) error
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `
		SELECT id, email, name, class, invoice_approval, created_at
		FROM accounts
		WHERE id = $1
	`

	var account entity.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.Class,
		&account.InvoiceApproval,
		&account.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id),
		)
		return nil, fmt.Errorf("find account by ID %s: %w", id, err)
	}

	return &account, nil
}

func (r *accountRepository) FindPendingInvoiceRequests(ctx context.Context) ([]*entity.Account, error) {
	query := `
		SELECT id, email, name, class, invoice_approval, created_at
		FROM accounts
		WHERE class = $1 AND invoice_approval = $2
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, entity.AccountClassProfessional, entity.InvoiceApprovalPending)
	if err != nil {
		r.log.Error("Failed to list pending invoice requests", zap.Error(err))
		return nil, fmt.Errorf("list pending invoice requests: %w", err)
	}
	defer rows.Close()

	var accounts []*entity.Account
	for rows.Next() {
		var account entity.Account
		err := rows.Scan(
			&account.ID,
			&account.Email,
			&account.Name,
			&account.Class,
			&account.InvoiceApproval,
			&account.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan account row", zap.Error(err))
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}

func (r *accountRepository) UpdateInvoiceApproval(ctx context.Context, id string, state entity.InvoiceApproval) error {
	query := `UPDATE accounts SET invoice_approval = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, state)
	if err != nil {
		r.log.Error("Failed to update invoice approval",
			zap.Error(err),
			zap.String("account_id", id),
			zap.String("state", string(state)),
		)
		return fmt.Errorf("update invoice approval for account %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id)
	}

	r.log.Info("Invoice approval updated",
		zap.String("account_id", id),
		zap.String("state", string(state)),
	)
	return nil
}
