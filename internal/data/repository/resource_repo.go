package repository

import (
	"context"
	"fmt"

	"hawc-booking/internal/data/entity"
	"hawc-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResourceRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Resource, error)
	FindAll(ctx context.Context, typeTag string) ([]*entity.Resource, error)
}

type resourceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResourceRepository(db database.PgxIface, log *zap.Logger) ResourceRepository {
	return &resourceRepository{
		db:  db,
		log: log.With(zap.String("repository", "resource")),
	}
}

func (r *resourceRepository) FindByID(ctx context.Context, id string) (*entity.Resource, error) {
	query := `
		SELECT id, name, type, location, price_per_hour, description
		FROM resources
		WHERE id = $1
	`

	var resource entity.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Location,
		&resource.PricePerHour,
		&resource.Description,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource by ID",
			zap.Error(err),
			zap.String("resource_id", id),
		)
		return nil, fmt.Errorf("find resource by ID %s: %w", id, err)
	}

	return &resource, nil
}

func (r *resourceRepository) FindAll(ctx context.Context, typeTag string) ([]*entity.Resource, error) {
	query := `
		SELECT id, name, type, location, price_per_hour, description
		FROM resources
		WHERE ($1 = '' OR type = $1)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, typeTag)
	if err != nil {
		r.log.Error("Failed to list resources",
			zap.Error(err),
			zap.String("type", typeTag),
		)
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var resources []*entity.Resource
	for rows.Next() {
		var resource entity.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.Name,
			&resource.Type,
			&resource.Location,
			&resource.PricePerHour,
			&resource.Description,
		)
		if err != nil {
			r.log.Error("Failed to scan resource row", zap.Error(err))
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		resources = append(resources, &resource)
	}

	return resources, rows.Err()
}
