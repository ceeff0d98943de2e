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

const villagerTableName = "gramsahayak.villagers"

var villagerColumns = utils.StructTagValues(types.Villager{})

type VillagerRepository struct {
	pool *pgxpool.Pool
}

func NewVillagerRepository(pool *pgxpool.Pool) *VillagerRepository {
	return &VillagerRepository{pool: pool}
}

func (r *VillagerRepository) CreateVillager(ctx context.Context, villager *types.Villager) error {

	villager.ID = utils.NanoID()
	if villager.ComplaintsRaised == nil {
		villager.ComplaintsRaised = []string{}
	}

	villagerMap := utils.StructToMap(villager)

	query, args, err := psql().Insert(villagerTableName).SetMap(villagerMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert villager query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create villager")

}

func (r *VillagerRepository) Villager(ctx context.Context, villagerID string) (*types.Villager, error) {
	return r.villagerWhere(ctx, sq.Eq{"id": villagerID})
}

func (r *VillagerRepository) VillagerByPhone(ctx context.Context, phoneNumber string) (*types.Villager, error) {
	return r.villagerWhere(ctx, sq.Eq{"phone_number": phoneNumber})
}

func (r *VillagerRepository) villagerWhere(ctx context.Context, pred sq.Eq) (*types.Villager, error) {

	query, args, err := psql().Select(villagerColumns...).From(villagerTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate villager query: %w", err)
	}

	var villager = new(types.Villager)
	err = pgxscan.Get(ctx, r.pool, villager, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrVillagerNotFound
	}

	if villager.ComplaintsRaised == nil {
		villager.ComplaintsRaised = []string{}
	}

	return villager, nil

}

func (r *VillagerRepository) Villagers(ctx context.Context) ([]*types.Villager, error) {

	query, args, err := psql().Select(villagerColumns...).From(villagerTableName).
		OrderBy("name asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate villagers query: %w", err)
	}

	var villagers = make([]*types.Villager, 0)
	err = pgxscan.Select(ctx, r.pool, &villagers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select villagers: %w", err)
	}

	for _, villager := range villagers {
		if villager.ComplaintsRaised == nil {
			villager.ComplaintsRaised = []string{}
		}
	}

	return villagers, nil
}

// AppendComplaintRaised records a newly raised complaint on the reporting
// villager's own profile.
func (r *VillagerRepository) AppendComplaintRaised(ctx context.Context, villagerID, complaintID string) error {

	query := `
		UPDATE gramsahayak.villagers
		SET complaints_raised = complaints_raised || to_jsonb($2::text)
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, villagerID, complaintID)
	if err != nil {
		return fmt.Errorf("failed to append complaint to villager %s: %w", villagerID, err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrVillagerNotFound
	}

	return nil
}

func (r *VillagerRepository) SetAnonymousIdentity(ctx context.Context, villagerID, identity string) error {

	query, args, err := psql().Update(villagerTableName).
		Set("anonymous_identity", identity).
		Where(sq.Eq{"id": villagerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate anonymous identity update for villager %s: %w", villagerID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)

	return utils.ErrorWrapOrNil(err, "failed to set anonymous identity")
}
