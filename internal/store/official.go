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

const officialTableName = "gramsahayak.government_officials"

var officialColumns = utils.StructTagValues(types.Official{})

type OfficialRepository struct {
	pool *pgxpool.Pool
}

func NewOfficialRepository(pool *pgxpool.Pool) *OfficialRepository {
	return &OfficialRepository{pool: pool}
}

func (r *OfficialRepository) CreateOfficial(ctx context.Context, official *types.Official) error {

	official.ID = utils.NanoID()

	officialMap := utils.StructToMap(official)

	query, args, err := psql().Insert(officialTableName).SetMap(officialMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert official query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create official")

}

func (r *OfficialRepository) Official(ctx context.Context, officialID string) (*types.Official, error) {
	return r.officialWhere(ctx, sq.Eq{"id": officialID})
}

func (r *OfficialRepository) OfficialByGovernmentID(ctx context.Context, governmentID string) (*types.Official, error) {
	return r.officialWhere(ctx, sq.Eq{"government_id": governmentID})
}

func (r *OfficialRepository) officialWhere(ctx context.Context, pred sq.Eq) (*types.Official, error) {

	query, args, err := psql().Select(officialColumns...).From(officialTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate official query: %w", err)
	}

	var official = new(types.Official)
	err = pgxscan.Get(ctx, r.pool, official, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrOfficialNotFound
	}

	return official, nil

}

func (r *OfficialRepository) Officials(ctx context.Context) ([]*types.Official, error) {

	query, args, err := psql().Select(officialColumns...).From(officialTableName).
		OrderBy("name asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate officials query: %w", err)
	}

	var officials = make([]*types.Official, 0)
	err = pgxscan.Select(ctx, r.pool, &officials, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select officials: %w", err)
	}

	return officials, nil
}
