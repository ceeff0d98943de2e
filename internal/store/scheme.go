package store

import (
	"context"
	"fmt"

	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemeTableName = "gramsahayak.schemes"

var schemeColumns = utils.StructTagValues(types.Scheme{})

type SchemeRepository struct {
	pool *pgxpool.Pool
}

func NewSchemeRepository(pool *pgxpool.Pool) *SchemeRepository {
	return &SchemeRepository{pool: pool}
}

func (r *SchemeRepository) CreateScheme(ctx context.Context, scheme *types.Scheme) error {

	scheme.ID = utils.NanoID()

	schemeMap := utils.StructToMap(scheme)

	query, args, err := psql().Insert(schemeTableName).SetMap(schemeMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert scheme query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create scheme")

}

func (r *SchemeRepository) Schemes(ctx context.Context) ([]*types.Scheme, error) {

	query, args, err := psql().Select(schemeColumns...).From(schemeTableName).
		OrderBy("scheme_id asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schemes query: %w", err)
	}

	var schemes = make([]*types.Scheme, 0)
	err = pgxscan.Select(ctx, r.pool, &schemes, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select schemes: %w", err)
	}

	return schemes, nil
}

// SchemeBySchemeID looks up by the public scheme code (e.g. SCH-AGRI-001),
// not the row id.
func (r *SchemeRepository) SchemeBySchemeID(ctx context.Context, schemeID string) (*types.Scheme, error) {

	query, args, err := psql().Select(schemeColumns...).From(schemeTableName).
		Where(sq.Eq{"scheme_id": schemeID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate scheme query: %w", err)
	}

	var scheme = new(types.Scheme)
	err = pgxscan.Get(ctx, r.pool, scheme, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrSchemeNotFound
	}

	return scheme, nil

}
