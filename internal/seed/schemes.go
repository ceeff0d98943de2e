package seed

import (
	"context"
	"errors"
	"fmt"

	"gramsahayak/internal/store"
	"gramsahayak/pkg/types"
)

// SeedSchemes syncs the database with the scheme catalogue below. This
// file is the source of truth for government schemes: schemes that don't
// exist yet (matched on scheme_id) are inserted, existing ones are left
// untouched.
func SeedSchemes(ctx context.Context, repo *store.SchemeRepository) error {
	schemes := []types.Scheme{
		{
			SchemeID:   "SCH-001",
			SchemeName: "Pradhan Mantri Awas Yojana (Gramin)",
			SchemeDesc: "Financial assistance for construction of pucca houses for rural households without adequate housing.",
			SchemeDept: "Ministry of Rural Development",
		},
		{
			SchemeID:   "SCH-002",
			SchemeName: "MGNREGA Employment Guarantee",
			SchemeDesc: "Guaranteed 100 days of wage employment per year to rural households whose adult members volunteer for unskilled manual work.",
			SchemeDept: "Ministry of Rural Development",
		},
		{
			SchemeID:   "SCH-003",
			SchemeName: "Jal Jeevan Mission",
			SchemeDesc: "Functional household tap connections to every rural household for safe and adequate drinking water.",
			SchemeDept: "Ministry of Jal Shakti",
		},
		{
			SchemeID:   "SCH-004",
			SchemeName: "Ayushman Bharat PM-JAY",
			SchemeDesc: "Health cover of five lakh rupees per family per year for secondary and tertiary care hospitalization.",
			SchemeDept: "Ministry of Health and Family Welfare",
		},
		{
			SchemeID:   "SCH-005",
			SchemeName: "PM Kisan Samman Nidhi",
			SchemeDesc: "Income support of six thousand rupees per year to all landholding farmer families, paid in three instalments.",
			SchemeDept: "Ministry of Agriculture and Farmers Welfare",
		},
		{
			SchemeID:   "SCH-006",
			SchemeName: "Swachh Bharat Mission (Gramin)",
			SchemeDesc: "Sanitation coverage and solid waste management support for open-defecation-free villages.",
			SchemeDept: "Ministry of Jal Shakti",
		},
	}

	seeded := 0
	for _, scheme := range schemes {
		_, err := repo.SchemeBySchemeID(ctx, scheme.SchemeID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrSchemeNotFound) {
			return fmt.Errorf("failed to fetch scheme %s: %w", scheme.SchemeID, err)
		}

		if err := repo.CreateScheme(ctx, &scheme); err != nil {
			return fmt.Errorf("failed to create scheme %s: %w", scheme.SchemeID, err)
		}
		seeded++
	}

	fmt.Printf("Schemes seeded: %d created\n", seeded)
	return nil
}
