package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/you-humble/kicad-dblib/internal/model"
)

func (r *repository) AddPart(ctx context.Context, p model.Part) (uuid.UUID, error) {
	const op = "repository.AddPart"

	q := r.sb.
		Insert(tableParts).
		Columns(partColumns[1:]...).
		Values(partValues(p)...).
		Suffix("RETURNING parts_uuid")

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

// UpdatePart rewrites every field except the business key on all rows
// carrying p.KicadPartNumber.
func (r *repository) UpdatePart(ctx context.Context, p model.Part) error {
	const op = "repository.UpdatePart"

	q := r.sb.
		Update(tableParts).
		SetMap(sq.Eq{
			"description":              p.Description,
			"datasheet":                p.Datasheet,
			"footprint_ref":            p.FootprintRef,
			"symbol_ref":               p.SymbolRef,
			"model_ref":                p.ModelRef,
			"manufacturer_part_number": p.ManufacturerPartNumber,
			"manufacturer":             p.Manufacturer,
			"manufacturer_part_url":    p.ManufacturerPartURL,
			"note":                     p.Note,
			"value":                    p.Value,
			"component_type":           string(p.ComponentType),
		}).
		Where(sq.Eq{"kicad_part_number": p.KicadPartNumber})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) Parts(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error) {
	const op = "repository.Parts"

	q := r.sb.
		Select(partRowColumns...).
		From(tableParts)
	if !filter.Empty() {
		q = q.Where(sq.Eq{"component_type": string(filter.ComponentType)})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ents, err := pgx.CollectRows(rows, pgx.RowToStructByName[PartRowEntity])
	if err != nil {
		return nil, fmt.Errorf("%s collect: %w", op, err)
	}

	out := make([]model.PartRow, 0, len(ents))
	for _, e := range ents {
		out = append(out, PartRowEntityToModel(e))
	}

	return out, nil
}

// PartByKey returns the oldest part with the given business key.
func (r *repository) PartByKey(ctx context.Context, key string) (*model.Part, error) {
	const op = "repository.PartByKey"

	q := r.sb.
		Select(partColumns...).
		From(tableParts).
		Where(sq.Eq{"kicad_part_number": key}).
		OrderBy("created_at").
		Limit(1)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ent, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[PartEntity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return PartEntityToModel(ent), nil
}

func (r *repository) PartKeys(ctx context.Context) ([]model.PartKey, error) {
	const op = "repository.PartKeys"

	q := r.sb.
		Select("parts_uuid", "kicad_part_number").
		From(tableParts).
		OrderBy("created_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ents, err := pgx.CollectRows(rows, pgx.RowToStructByName[PartKeyEntity])
	if err != nil {
		return nil, fmt.Errorf("%s collect: %w", op, err)
	}

	out := make([]model.PartKey, 0, len(ents))
	for _, e := range ents {
		out = append(out, PartKeyEntityToModel(e))
	}

	return out, nil
}
