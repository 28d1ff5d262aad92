package seeder

import (
	"log"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo    domain.UserRepository
	playerRepo  domain.PlayerRepository
	kingdomRepo domain.KingdomRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(
	userRepo domain.UserRepository,
	playerRepo domain.PlayerRepository,
	kingdomRepo domain.KingdomRepository,
) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		playerRepo:  playerRepo,
		kingdomRepo: kingdomRepo,
	}
}

// Seed populates the database with the demo dataset. Existing
// usernames and kingdom numbers are skipped so the command is safe to
// re-run.
func (s *Seeder) Seed() error {
	admins := []domain.User{
		{Username: "kingdom_admin1", Password: "password123", Email: "admin1@example.com", Role: domain.RoleKingdomAdmin},
		{Username: "kingdom_admin2", Password: "password123", Email: "admin2@example.com", Role: domain.RoleKingdomAdmin},
		{Username: "kingdom_admin3", Password: "password123", Email: "admin3@example.com", Role: domain.RoleKingdomAdmin},
	}
	playerUsers := []domain.User{
		{Username: "player1", Password: "password123", Email: "player1@example.com", Role: domain.RolePlayer},
		{Username: "player2", Password: "password123", Email: "player2@example.com", Role: domain.RolePlayer},
		{Username: "player3", Password: "password123", Email: "player3@example.com", Role: domain.RolePlayer},
	}

	log.Println("Seeding users...")
	adminIDs, err := s.seedUsers(admins)
	if err != nil {
		return err
	}
	playerUserIDs, err := s.seedUsers(playerUsers)
	if err != nil {
		return err
	}

	log.Println("Seeding kingdoms...")
	kingdoms := []domain.Kingdom{
		{
			UserID:         adminIDs[0],
			KingdomNumber:  "1912",
			KingdomName:    "Imperium Dynasty",
			Seed:           "A",
			AveragePower:   65000000,
			KvkSeason:      "Season 3",
			MinimumPower:   45000000,
			Status:         "Active",
			KingdomType:    "Competitive",
			Languages:      "English",
			Description:    "A highly competitive kingdom looking for active fighters for KVK",
			Requirements:   "45M power, T5 troops, high activity during KVK",
		},
		{
			UserID:         adminIDs[1],
			KingdomNumber:  "2546",
			KingdomName:    "Phoenix Rising",
			Seed:           "B",
			AveragePower:   40000000,
			KvkSeason:      "Season 2",
			MinimumPower:   25000000,
			Status:         "Recruiting",
			KingdomType:    "Growing",
			Languages:      "International",
			Description:    "A growing kingdom looking for active members",
			Requirements:   "25M power, willing to participate in kingdom events",
		},
		{
			UserID:         adminIDs[2],
			KingdomNumber:  "1075",
			KingdomName:    "Valhalla Warriors",
			Seed:           "A",
			AveragePower:   80000000,
			KvkSeason:      "Season 4",
			MinimumPower:   60000000,
			Status:         "Competitive",
			KingdomType:    "High Activity",
			Languages:      "English",
			Description:    "Elite kingdom seeking highly active fighters",
			Requirements:   "60M power, T5 troops, high kill counts",
		},
	}
	for i := range kingdoms {
		existing, err := s.kingdomRepo.GetByNumber(kingdoms[i].KingdomNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.kingdomRepo.Create(&kingdoms[i]); err != nil {
			return err
		}
	}

	log.Println("Seeding players...")
	players := []domain.Player{
		{
			UserID:         playerUserIDs[0],
			InGameName:     "AthenaWarrior",
			GameID:         "19384756",
			Power:          78500000,
			KillPoints:     1200000000,
			DeadTroops:     3700000,
			VIPLevel:       16,
			HasTier5:       true,
			MainTroopType:  "Infantry",
			PlayStyle:      "Rally Leader",
			Languages:      "English",
			Available:      true,
			AdditionalInfo: "Looking for a competitive kingdom for KVK",
		},
		{
			UserID:         playerUserIDs[1],
			InGameName:     "DragonSlayer",
			GameID:         "82756431",
			Power:          65200000,
			KillPoints:     875000000,
			DeadTroops:     2100000,
			VIPLevel:       15,
			HasTier5:       true,
			MainTroopType:  "Cavalry",
			PlayStyle:      "Field Fighter",
			Languages:      "English/Spanish",
			Available:      true,
			AdditionalInfo: "Active daily, ready to migrate to a new kingdom",
		},
		{
			UserID:         playerUserIDs[2],
			InGameName:     "ArcherQueen",
			GameID:         "54129876",
			Power:          52800000,
			KillPoints:     625000000,
			DeadTroops:     1800000,
			VIPLevel:       14,
			HasTier5:       true,
			MainTroopType:  "Archer",
			PlayStyle:      "Support",
			Languages:      "English",
			Available:      true,
			AdditionalInfo: "Specialist in archer armies and support roles",
		},
	}
	for i := range players {
		existing, err := s.playerRepo.GetByUserID(players[i].UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.playerRepo.Create(&players[i]); err != nil {
			return err
		}
	}

	return nil
}

// seedUsers creates the given users if absent and returns their ids
// in input order.
func (s *Seeder) seedUsers(users []domain.User) ([]int, error) {
	ids := make([]int, 0, len(users))
	for i := range users {
		existing, err := s.userRepo.GetByUsername(users[i].Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			ids = append(ids, existing.ID)
			continue
		}
		if err := s.userRepo.Create(&users[i]); err != nil {
			return nil, err
		}
		ids = append(ids, users[i].ID)
	}
	return ids, nil
}
