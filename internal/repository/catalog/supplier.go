package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/you-humble/kicad-dblib/internal/model"
)

func (r *repository) AddSupplier(ctx context.Context, s model.Supplier) (uuid.UUID, error) {
	const op = "repository.AddSupplier"

	q := r.sb.
		Insert(tableSupplier).
		Columns(supplierColumns...).
		Values(supplierValues(s)...).
		Suffix("RETURNING supplier_uuid")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}
