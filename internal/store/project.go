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

const projectTableName = "gramsahayak.projects"

var projectColumns = utils.StructTagValues(types.Project{})

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *types.Project) error {

	project.ID = utils.NanoID()
	project.CreatedAt = time.Now().UTC()
	if project.Status == "" {
		project.Status = types.ProjectStatusPending
	}
	if project.Images == nil {
		project.Images = []string{}
	}
	if project.Milestones == nil {
		project.Milestones = []string{}
	}

	projectMap := utils.StructToMap(project)

	query, args, err := psql().Insert(projectTableName).SetMap(projectMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert project query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create project")

}

func (r *ProjectRepository) ProjectsByVillage(ctx context.Context, villageName string) ([]*types.Project, error) {
	return r.projectsWhere(ctx, sq.Eq{"village_name": villageName})
}

func (r *ProjectRepository) ProjectsByContractor(ctx context.Context, contractorID string) ([]*types.Project, error) {
	return r.projectsWhere(ctx, sq.Eq{"contractor_id": contractorID})
}

func (r *ProjectRepository) projectsWhere(ctx context.Context, pred sq.Eq) ([]*types.Project, error) {

	query, args, err := psql().Select(projectColumns...).From(projectTableName).
		Where(pred).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate projects query: %w", err)
	}

	var projects = make([]*types.Project, 0)
	err = pgxscan.Select(ctx, r.pool, &projects, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}

	return projects, nil
}

// BudgetInProgress sums allocated budgets of in-progress projects in a
// village, for the dashboard's budget-used card.
func (r *ProjectRepository) BudgetInProgress(ctx context.Context, villageName string) (float64, error) {

	query := `
		SELECT COALESCE(SUM(allocated_budget), 0)
		FROM gramsahayak.projects
		WHERE village_name = $1 AND status = $2`

	var total float64
	err := r.pool.QueryRow(ctx, query, villageName, types.ProjectStatusInProgress).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum in-progress budget for village %s: %w", villageName, err)
	}

	return total, nil
}
