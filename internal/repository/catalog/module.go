package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/you-humble/kicad-dblib/internal/model"
)

// AddModule inserts the module row on its own and returns the generated id.
func (r *repository) AddModule(ctx context.Context, m model.Module) (uuid.UUID, error) {
	const op = "repository.AddModule"

	id, err := r.insertModule(ctx, r.pool, m)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// AddModuleParts links parts to an existing module. The link rows commit
// together, but independently of the module row: a failure here leaves the
// module stored with whatever links it had before.
func (r *repository) AddModuleParts(ctx context.Context, moduleID uuid.UUID, partIDs []uuid.UUID) error {
	const op = "repository.AddModuleParts"

	if len(partIDs) == 0 {
		return nil
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return r.insertModuleParts(ctx, tx, moduleID, partIDs)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CreateModule stores the module and all its links in one transaction.
// Either both become visible or nothing is written.
func (r *repository) CreateModule(ctx context.Context, m model.Module, partIDs []uuid.UUID) (uuid.UUID, error) {
	const op = "repository.CreateModule"

	var id uuid.UUID
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		id, err = r.insertModule(ctx, tx, m)
		if err != nil {
			return err
		}

		return r.insertModuleParts(ctx, tx, id, partIDs)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *repository) ModuleParts(ctx context.Context, moduleID uuid.UUID) ([]model.ModulePart, error) {
	const op = "repository.ModuleParts"

	exists, err := r.moduleExists(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, model.ErrModuleNotFound
	}

	q := r.sb.
		Select("module_uuid", "part_uuid").
		From(tableModuleParts).
		Where(sq.Eq{"module_uuid": moduleID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ents, err := pgx.CollectRows(rows, pgx.RowToStructByName[ModulePartEntity])
	if err != nil {
		return nil, fmt.Errorf("%s collect: %w", op, err)
	}

	out := make([]model.ModulePart, 0, len(ents))
	for _, e := range ents {
		out = append(out, ModulePartEntityToModel(e))
	}

	return out, nil
}

func (r *repository) ModuleExists(ctx context.Context, moduleID uuid.UUID) (bool, error) {
	const op = "repository.ModuleExists"

	exists, err := r.moduleExists(ctx, moduleID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *repository) moduleExists(ctx context.Context, moduleID uuid.UUID) (bool, error) {
	q := r.sb.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(tableModule).
		Where(sq.Eq{"module_uuid": moduleID}).
		Suffix(")")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) insertModule(ctx context.Context, db querier, m model.Module) (uuid.UUID, error) {
	q := r.sb.
		Insert(tableModule).
		Columns(moduleColumns...).
		Values(moduleValues(m)...).
		Suffix("RETURNING module_uuid")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// insertModuleParts writes one row per id, duplicates included.
func (r *repository) insertModuleParts(ctx context.Context, db querier, moduleID uuid.UUID, partIDs []uuid.UUID) error {
	if len(partIDs) == 0 {
		return nil
	}

	q := r.sb.
		Insert(tableModuleParts).
		Columns("module_uuid", "part_uuid")
	for _, pid := range partIDs {
		q = q.Values(moduleID, pid)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	return nil
}
