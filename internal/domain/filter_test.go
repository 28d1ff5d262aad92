package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPlayers() []*Player {
	return []*Player{
		{ID: 1, InGameName: "AthenaWarrior", GameID: "19384756", MainTroopType: "Infantry", PlayStyle: "Rally Leader"},
		{ID: 2, InGameName: "DragonSlayer", GameID: "82756431", MainTroopType: "Cavalry", PlayStyle: "Field Fighter"},
		{ID: 3, InGameName: "ArcherQueen", GameID: "54129876", MainTroopType: "Archer", PlayStyle: "Support"},
	}
}

func testKingdoms() []*Kingdom {
	return []*Kingdom{
		{ID: 1, KingdomNumber: "1912", KingdomName: "Imperium Dynasty", Seed: "A", Status: "Active"},
		{ID: 2, KingdomNumber: "2546", KingdomName: "Phoenix Rising", Seed: "B", Status: "Recruiting"},
		{ID: 3, KingdomNumber: "1075", KingdomName: "Valhalla Warriors", Seed: "A", Status: "Competitive"},
	}
}

func TestFilterPlayersEmptyFilterReturnsAll(t *testing.T) {
	players := testPlayers()

	filtered := FilterPlayers(players, PlayerFilter{})

	assert.Len(t, filtered, len(players))
	for i := range players {
		assert.Same(t, players[i], filtered[i])
	}
}

func TestFilterPlayersIsIdempotent(t *testing.T) {
	filter := PlayerFilter{TroopType: "Cavalry"}

	once := FilterPlayers(testPlayers(), filter)
	twice := FilterPlayers(once, filter)

	assert.Equal(t, once, twice)
}

func TestFilterPlayers(t *testing.T) {
	tests := []struct {
		name        string
		filter      PlayerFilter
		expectedIDs []int
	}{
		{
			name:        "Search_By_Name_Case_Insensitive",
			filter:      PlayerFilter{Search: "dragon"},
			expectedIDs: []int{2},
		},
		{
			name:        "Search_By_Game_ID",
			filter:      PlayerFilter{Search: "5412"},
			expectedIDs: []int{3},
		},
		{
			name:        "Facet_Troop_Type",
			filter:      PlayerFilter{TroopType: "Infantry"},
			expectedIDs: []int{1},
		},
		{
			name:        "Facet_Play_Style",
			filter:      PlayerFilter{PlayStyle: "Support"},
			expectedIDs: []int{3},
		},
		{
			name:        "Criteria_Combine_With_AND",
			filter:      PlayerFilter{Search: "DragonSlayer", TroopType: "Cavalry"},
			expectedIDs: []int{2},
		},
		{
			name:        "AND_Rejects_Partial_Match",
			filter:      PlayerFilter{Search: "DragonSlayer", TroopType: "Infantry"},
			expectedIDs: []int{},
		},
		{
			name:        "No_Match",
			filter:      PlayerFilter{Search: "nobody"},
			expectedIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterPlayers(testPlayers(), tt.filter)

			ids := make([]int, 0, len(filtered))
			for _, p := range filtered {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterKingdoms(t *testing.T) {
	tests := []struct {
		name        string
		filter      KingdomFilter
		expectedIDs []int
	}{
		{
			name:        "Search_By_Name",
			filter:      KingdomFilter{Search: "phoenix"},
			expectedIDs: []int{2},
		},
		{
			name:        "Search_By_Kingdom_Number",
			filter:      KingdomFilter{Search: "1075"},
			expectedIDs: []int{3},
		},
		{
			name:        "Facet_Seed",
			filter:      KingdomFilter{Seed: "A"},
			expectedIDs: []int{1, 3},
		},
		{
			name:        "Facet_Status",
			filter:      KingdomFilter{Status: "Recruiting"},
			expectedIDs: []int{2},
		},
		{
			name:        "Seed_And_Status",
			filter:      KingdomFilter{Seed: "A", Status: "Competitive"},
			expectedIDs: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterKingdoms(testKingdoms(), tt.filter)

			ids := make([]int, 0, len(filtered))
			for _, k := range filtered {
				ids = append(ids, k.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	kingdoms := testKingdoms()

	filtered := FilterKingdoms(kingdoms, KingdomFilter{Seed: "A"})

	assert.Len(t, filtered, 2)
	assert.Equal(t, "1912", filtered[0].KingdomNumber)
	assert.Equal(t, "1075", filtered[1].KingdomNumber)
}

func TestPlayerFacetsDistinctFirstSeenOrder(t *testing.T) {
	players := append(testPlayers(), &Player{ID: 4, InGameName: "IronWall", GameID: "11223344", MainTroopType: "Infantry", PlayStyle: "Garrison"})

	options := PlayerFacets(players)

	assert.Equal(t, []string{"Infantry", "Cavalry", "Archer"}, options.TroopTypes)
	assert.Equal(t, []string{"Rally Leader", "Field Fighter", "Support", "Garrison"}, options.PlayStyles)
}

func TestKingdomFacetsDistinctFirstSeenOrder(t *testing.T) {
	options := KingdomFacets(testKingdoms())

	assert.Equal(t, []string{"A", "B"}, options.Seeds)
	assert.Equal(t, []string{"Active", "Recruiting", "Competitive"}, options.Statuses)
}

func TestFacetsOfEmptyCollection(t *testing.T) {
	options := PlayerFacets(nil)

	assert.Empty(t, options.TroopTypes)
	assert.Empty(t, options.PlayStyles)
}
