package seed

import (
	"context"
	"errors"
	"fmt"

	"gramsahayak/internal/store"
	"gramsahayak/pkg/types"

	"golang.org/x/crypto/bcrypt"
)

// Demo accounts for local development. All of them log in with the same
// password so manual testing stays simple.
const demoPassword = "gramsahayak"

var demoVillagers = []types.Villager{
	{Name: "Meera Devi", Gender: "Female", Age: 34, Email: "meera.devi@example.com", PhoneNumber: "9876543210", VillageName: "Rampur", Taluk: "Sadar", District: "Sitapur", State: "Uttar Pradesh"},
	{Name: "Ramesh Yadav", Gender: "Male", Age: 41, Email: "ramesh.yadav@example.com", PhoneNumber: "9876543211", VillageName: "Rampur", Taluk: "Sadar", District: "Sitapur", State: "Uttar Pradesh"},
	{Name: "Sunita Kumari", Gender: "Female", Age: 28, Email: "sunita.kumari@example.com", PhoneNumber: "9876543212", VillageName: "Kishanpur", Taluk: "Biswan", District: "Sitapur", State: "Uttar Pradesh"},
	{Name: "Arjun Singh", Gender: "Male", Age: 52, Email: "arjun.singh@example.com", PhoneNumber: "9876543213", VillageName: "Madhopur", Taluk: "Mahmudabad", District: "Sitapur", State: "Uttar Pradesh"},
	{Name: "Kavita Sharma", Gender: "Female", Age: 37, Email: "kavita.sharma@example.com", PhoneNumber: "9876543214", VillageName: "Chandpur", Taluk: "Sidhauli", District: "Sitapur", State: "Uttar Pradesh"},
	{Name: "Mohan Lal", Gender: "Male", Age: 60, Email: "mohan.lal@example.com", PhoneNumber: "9876543215", VillageName: "Sultanpur", Taluk: "Laharpur", District: "Sitapur", State: "Uttar Pradesh"},
}

var demoOfficials = []types.Official{
	{Name: "Nikhil Rao", Email: "nikhil.rao@gov.example.in", GovernmentID: "GOV-RAM-01", VillageName: "Rampur"},
	{Name: "Asha Patil", Email: "asha.patil@gov.example.in", GovernmentID: "GOV-CHA-01", VillageName: "Chandpur"},
	{Name: "Vikram Joshi", Email: "vikram.joshi@gov.example.in", GovernmentID: "GOV-KIS-01", VillageName: "Kishanpur"},
	{Name: "Priya Nair", Email: "priya.nair@gov.example.in", GovernmentID: "GOV-MAD-01", VillageName: "Madhopur"},
	{Name: "Suresh Menon", Email: "suresh.menon@gov.example.in", GovernmentID: "GOV-SUL-01", VillageName: "Sultanpur"},
}

var demoContractors = []types.Contractor{
	{Name: "Bharat Infra Works", Email: "contact@bharatinfra.example.com", PhoneNumber: "9123456780", ContractorID: "CON-1001"},
	{Name: "Gram Nirman Co", Email: "office@gramnirman.example.com", PhoneNumber: "9123456781", ContractorID: "CON-1002"},
	{Name: "Shakti Constructions", Email: "hello@shakticon.example.com", PhoneNumber: "9123456782", ContractorID: "CON-1003"},
}

func SeedDemoUsers(
	ctx context.Context,
	villagerRepo *store.VillagerRepository,
	officialRepo *store.OfficialRepository,
	contractorRepo *store.ContractorRepository,
) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	seeded := 0

	for _, villager := range demoVillagers {
		_, err := villagerRepo.VillagerByPhone(ctx, villager.PhoneNumber)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrVillagerNotFound) {
			return fmt.Errorf("failed to fetch villager %s: %w", villager.PhoneNumber, err)
		}

		villager.Password = string(hash)
		villager.Role = types.RoleVillager

		if err := villagerRepo.CreateVillager(ctx, &villager); err != nil {
			return fmt.Errorf("failed to create villager %s: %w", villager.PhoneNumber, err)
		}
		seeded++
	}

	for _, official := range demoOfficials {
		_, err := officialRepo.OfficialByGovernmentID(ctx, official.GovernmentID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrOfficialNotFound) {
			return fmt.Errorf("failed to fetch official %s: %w", official.GovernmentID, err)
		}

		official.Password = string(hash)
		official.Role = types.RoleOfficial

		if err := officialRepo.CreateOfficial(ctx, &official); err != nil {
			return fmt.Errorf("failed to create official %s: %w", official.GovernmentID, err)
		}
		seeded++
	}

	for _, contractor := range demoContractors {
		_, err := contractorRepo.ContractorByContractorID(ctx, contractor.ContractorID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrContractorNotFound) {
			return fmt.Errorf("failed to fetch contractor %s: %w", contractor.ContractorID, err)
		}

		contractor.Password = string(hash)
		contractor.Role = types.RoleContractor

		if err := contractorRepo.CreateContractor(ctx, &contractor); err != nil {
			return fmt.Errorf("failed to create contractor %s: %w", contractor.ContractorID, err)
		}
		seeded++
	}

	fmt.Printf("Demo users seeded: %d created\n", seeded)
	return nil
}
