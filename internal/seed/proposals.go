package seed

import (
	"context"
	"fmt"

	"gramsahayak/internal/store"
	"gramsahayak/pkg/types"
)

var demoProposals = []types.Proposal{
	{VillageID: "Rampur", ProposedProjectTitle: "Concrete road from the school to the market square"},
	{VillageID: "Rampur", ProposedProjectTitle: "Solar street lights along the main road"},
	{VillageID: "Kishanpur", ProposedProjectTitle: "New borewell and overhead water tank near the east fields"},
	{VillageID: "Madhopur", ProposedProjectTitle: "Repair of the primary health sub-centre roof"},
	{VillageID: "Chandpur", ProposedProjectTitle: "Drainage channel for the monsoon runoff behind the temple"},
	{VillageID: "Sultanpur", ProposedProjectTitle: "Community hall extension for panchayat meetings"},
}

// SeedDemoProposals fills an empty proposals table with sample village
// requests so the approval flow has something to act on.
func SeedDemoProposals(ctx context.Context, repo *store.ProposalRepository) error {
	existing, err := repo.Proposals(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list proposals: %w", err)
	}

	if len(existing) > 0 {
		fmt.Printf("Proposals already present: %d, skipping\n", len(existing))
		return nil
	}

	for _, proposal := range demoProposals {
		if err := repo.CreateProposal(ctx, &proposal); err != nil {
			return fmt.Errorf("failed to create proposal %q: %w", proposal.ProposedProjectTitle, err)
		}
	}

	fmt.Printf("Demo proposals seeded: %d created\n", len(demoProposals))
	return nil
}
