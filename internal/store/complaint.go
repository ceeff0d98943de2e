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

const complaintTableName = "gramsahayak.complaints"

var complaintColumns = utils.StructTagValues(types.Complaint{})

type ComplaintRepository struct {
	pool *pgxpool.Pool
}

func NewComplaintRepository(pool *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{pool: pool}
}

func (r *ComplaintRepository) CreateComplaint(ctx context.Context, complaint *types.Complaint) error {

	complaint.ID = utils.NanoID()

	complaintMap := utils.StructToMap(complaint)

	query, args, err := psql().Insert(complaintTableName).SetMap(complaintMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert complaint query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create complaint")

}

func (r *ComplaintRepository) Complaint(ctx context.Context, complaintID string) (*types.Complaint, error) {

	query, args, err := psql().Select(complaintColumns...).From(complaintTableName).
		Where(sq.Eq{"id": complaintID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate complaint query: %w", err)
	}

	var complaint = new(types.Complaint)
	err = pgxscan.Get(ctx, r.pool, complaint, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrComplaintNotFound
	}

	return complaint, nil

}

// Ordering on created_at relies on the column holding RFC 3339 UTC text,
// which sorts chronologically.

func (r *ComplaintRepository) ComplaintsByVillage(ctx context.Context, villageName string) ([]*types.Complaint, error) {

	query, args, err := psql().Select(complaintColumns...).From(complaintTableName).
		Where(sq.Eq{"village_name": villageName}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate complaints by village query: %w", err)
	}

	var complaints = make([]*types.Complaint, 0)
	err = pgxscan.Select(ctx, r.pool, &complaints, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select complaints by village: %w", err)
	}

	return complaints, nil
}

func (r *ComplaintRepository) ComplaintsByVillagerPhone(ctx context.Context, phoneNumber string) ([]*types.Complaint, error) {

	query, args, err := psql().Select(complaintColumns...).From(complaintTableName).
		Where(sq.Eq{"villager_phone": phoneNumber}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate complaints by phone query: %w", err)
	}

	var complaints = make([]*types.Complaint, 0)
	err = pgxscan.Select(ctx, r.pool, &complaints, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select complaints by phone: %w", err)
	}

	return complaints, nil
}

// UpdateComplaintFields applies a partial update. Unknown keys surface as
// SQL errors; callers pass column names from the Complaint db tags.
func (r *ComplaintRepository) UpdateComplaintFields(ctx context.Context, complaintID string, fields map[string]any) error {

	query, args, err := psql().Update(complaintTableName).SetMap(fields).
		Where(sq.Eq{"id": complaintID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update complaint query for complaint %s: %w", complaintID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update complaint %s: %w", complaintID, err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrComplaintNotFound
	}

	return nil
}
