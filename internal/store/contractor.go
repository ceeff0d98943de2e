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

const contractorTableName = "gramsahayak.contractors"

var contractorColumns = utils.StructTagValues(types.Contractor{})

type ContractorRepository struct {
	pool *pgxpool.Pool
}

func NewContractorRepository(pool *pgxpool.Pool) *ContractorRepository {
	return &ContractorRepository{pool: pool}
}

func (r *ContractorRepository) CreateContractor(ctx context.Context, contractor *types.Contractor) error {

	contractor.ID = utils.NanoID()

	contractorMap := utils.StructToMap(contractor)

	query, args, err := psql().Insert(contractorTableName).SetMap(contractorMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert contractor query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create contractor")

}

func (r *ContractorRepository) ContractorByContractorID(ctx context.Context, contractorID string) (*types.Contractor, error) {

	query, args, err := psql().Select(contractorColumns...).From(contractorTableName).
		Where(sq.Eq{"contractor_id": contractorID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contractor query: %w", err)
	}

	var contractor = new(types.Contractor)
	err = pgxscan.Get(ctx, r.pool, contractor, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrContractorNotFound
	}

	return contractor, nil

}

func (r *ContractorRepository) Contractors(ctx context.Context) ([]*types.Contractor, error) {

	query, args, err := psql().Select(contractorColumns...).From(contractorTableName).
		OrderBy("name asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contractors query: %w", err)
	}

	var contractors = make([]*types.Contractor, 0)
	err = pgxscan.Select(ctx, r.pool, &contractors, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select contractors: %w", err)
	}

	return contractors, nil
}
