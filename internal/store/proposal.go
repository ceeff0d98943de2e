package store

import (
	"context"
	"fmt"
	"time"

	"gramsahayak/internal/utils"
	"gramsahayak/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const proposalTableName = "gramsahayak.proposed_projects"

var proposalColumns = utils.StructTagValues(types.Proposal{})

type ProposalRepository struct {
	pool *pgxpool.Pool
}

func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{pool: pool}
}

func (r *ProposalRepository) CreateProposal(ctx context.Context, proposal *types.Proposal) error {

	proposal.ID = utils.NanoID()
	proposal.Status = types.ProposalStatusPending
	proposal.CreatedAt = time.Now().UTC()

	proposalMap := utils.StructToMap(proposal)

	query, args, err := psql().Insert(proposalTableName).SetMap(proposalMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert proposal query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create proposal")

}

// Proposals lists newest first, optionally filtered by village.
func (r *ProposalRepository) Proposals(ctx context.Context, villageID string) ([]*types.Proposal, error) {

	builder := psql().Select(proposalColumns...).From(proposalTableName).
		OrderBy("created_at desc")
	if villageID != "" {
		builder = builder.Where(sq.Eq{"village_id": villageID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate proposals query: %w", err)
	}

	var proposals = make([]*types.Proposal, 0)
	err = pgxscan.Select(ctx, r.pool, &proposals, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select proposals: %w", err)
	}

	return proposals, nil
}

func (r *ProposalRepository) UpdateProposalStatus(ctx context.Context, proposalID string, status types.ProposalStatus) error {

	query, args, err := psql().Update(proposalTableName).
		Set("status", status).
		Where(sq.Eq{"id": proposalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update proposal query for proposal %s: %w", proposalID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update proposal %s: %w", proposalID, err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrProposalNotFound
	}

	return nil
}
