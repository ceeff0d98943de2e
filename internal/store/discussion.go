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

const discussionTableName = "gramsahayak.discussions"

var discussionColumns = utils.StructTagValues(types.Discussion{})

type DiscussionRepository struct {
	pool *pgxpool.Pool
}

func NewDiscussionRepository(pool *pgxpool.Pool) *DiscussionRepository {
	return &DiscussionRepository{pool: pool}
}

func (r *DiscussionRepository) CreateDiscussion(ctx context.Context, discussion *types.Discussion) error {

	discussion.ID = utils.NanoID()
	discussion.CreatedAt = time.Now().UTC()
	if discussion.Status == "" {
		discussion.Status = "Open"
	}
	if discussion.Replies == nil {
		discussion.Replies = []types.DiscussionComment{}
	}
	if discussion.Upvoters == nil {
		discussion.Upvoters = []string{}
	}

	discussionMap := utils.StructToMap(discussion)

	query, args, err := psql().Insert(discussionTableName).SetMap(discussionMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert discussion query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create discussion")

}

func (r *DiscussionRepository) Discussion(ctx context.Context, discussionID string) (*types.Discussion, error) {

	query, args, err := psql().Select(discussionColumns...).From(discussionTableName).
		Where(sq.Eq{"id": discussionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate discussion query: %w", err)
	}

	var discussion = new(types.Discussion)
	err = pgxscan.Get(ctx, r.pool, discussion, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrDiscussionNotFound
	}

	return discussion, nil

}

// Feed returns a village's discussions, newest first.
func (r *DiscussionRepository) Feed(ctx context.Context, villageName string, limit uint64) ([]*types.Discussion, error) {

	if limit == 0 {
		limit = 50
	}

	query, args, err := psql().Select(discussionColumns...).From(discussionTableName).
		Where(sq.Eq{"village_name": villageName}).
		OrderBy("created_at desc").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate feed query: %w", err)
	}

	var discussions = make([]*types.Discussion, 0)
	err = pgxscan.Select(ctx, r.pool, &discussions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select feed: %w", err)
	}

	for _, discussion := range discussions {
		if discussion.Replies == nil {
			discussion.Replies = []types.DiscussionComment{}
		}
	}

	return discussions, nil
}

func (r *DiscussionRepository) AppendReply(ctx context.Context, discussionID string, reply types.DiscussionComment) error {

	query := `
		UPDATE gramsahayak.discussions
		SET replies = replies || $2::jsonb
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, discussionID, reply)
	if err != nil {
		return fmt.Errorf("failed to append reply to discussion %s: %w", discussionID, err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrDiscussionNotFound
	}

	return nil
}

func (r *DiscussionRepository) AddUpvote(ctx context.Context, discussionID, userID string) error {

	query := `
		UPDATE gramsahayak.discussions
		SET upvotes = upvotes + 1,
		    upvoters = upvoters || to_jsonb($2::text)
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, discussionID, userID)

	return utils.ErrorWrapOrNil(err, "failed to add upvote")
}

func (r *DiscussionRepository) RemoveUpvote(ctx context.Context, discussionID, userID string) error {

	query := `
		UPDATE gramsahayak.discussions
		SET upvotes = GREATEST(upvotes - 1, 0),
		    upvoters = upvoters - $2::text
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, discussionID, userID)

	return utils.ErrorWrapOrNil(err, "failed to remove upvote")
}

func (r *DiscussionRepository) CountResolved(ctx context.Context) (int, error) {
	return r.countWhere(ctx, `status = 'Resolved'`, nil)
}

func (r *DiscussionRepository) CountResolvedByUser(ctx context.Context, userID string) (int, error) {
	return r.countWhere(ctx, `status = 'Resolved' AND real_user_id = $1`, []any{userID})
}

func (r *DiscussionRepository) countWhere(ctx context.Context, where string, args []any) (int, error) {

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", discussionTableName, where)

	var count int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count discussions: %w", err)
	}

	return count, nil
}

// DeleteAll clears the feed. Development helper behind the reset endpoint.
func (r *DiscussionRepository) DeleteAll(ctx context.Context) error {

	_, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", discussionTableName))

	return utils.ErrorWrapOrNil(err, "failed to clear discussions")
}
