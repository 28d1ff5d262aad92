package domain

import (
	"strings"
)

// PlayerFilter narrows a loaded player collection. The empty filter
// matches everything; active criteria are combined with AND.
type PlayerFilter struct {
	Search    string `form:"search"`
	TroopType string `form:"troop_type"`
	PlayStyle string `form:"play_style"`
}

// Matches reports whether the player satisfies every active criterion.
// Search is a case-insensitive substring match over the display name
// and the game identifier; facets are exact matches with an empty
// value acting as a wildcard.
func (f PlayerFilter) Matches(p *Player) bool {
	if !matchesSearch(f.Search, p.InGameName, p.GameID) {
		return false
	}
	if f.TroopType != "" && p.MainTroopType != f.TroopType {
		return false
	}
	if f.PlayStyle != "" && p.PlayStyle != f.PlayStyle {
		return false
	}
	return true
}

// KingdomFilter narrows a loaded kingdom collection, same semantics
// as PlayerFilter with the kingdom's facet fields.
type KingdomFilter struct {
	Search string `form:"search"`
	Seed   string `form:"seed"`
	Status string `form:"status"`
}

// Matches reports whether the kingdom satisfies every active criterion
func (f KingdomFilter) Matches(k *Kingdom) bool {
	if !matchesSearch(f.Search, k.KingdomName, k.KingdomNumber) {
		return false
	}
	if f.Seed != "" && k.Seed != f.Seed {
		return false
	}
	if f.Status != "" && k.Status != f.Status {
		return false
	}
	return true
}

// FilterPlayers returns the sub-sequence of players matching the
// filter, preserving input order.
func FilterPlayers(players []*Player, filter PlayerFilter) []*Player {
	filtered := make([]*Player, 0, len(players))
	for _, p := range players {
		if filter.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterKingdoms returns the sub-sequence of kingdoms matching the
// filter, preserving input order.
func FilterKingdoms(kingdoms []*Kingdom, filter KingdomFilter) []*Kingdom {
	filtered := make([]*Kingdom, 0, len(kingdoms))
	for _, k := range kingdoms {
		if filter.Matches(k) {
			filtered = append(filtered, k)
		}
	}
	return filtered
}

// PlayerFacetOptions holds the selectable facet values derived from a
// player collection.
type PlayerFacetOptions struct {
	TroopTypes []string `json:"troop_types"`
	PlayStyles []string `json:"play_styles"`
}

// KingdomFacetOptions holds the selectable facet values derived from a
// kingdom collection.
type KingdomFacetOptions struct {
	Seeds    []string `json:"seeds"`
	Statuses []string `json:"statuses"`
}

// PlayerFacets derives the distinct facet values present in the
// collection, in first-seen order. Options are recomputed per load,
// never cached.
func PlayerFacets(players []*Player) *PlayerFacetOptions {
	options := &PlayerFacetOptions{
		TroopTypes: make([]string, 0),
		PlayStyles: make([]string, 0),
	}
	for _, p := range players {
		options.TroopTypes = appendDistinct(options.TroopTypes, p.MainTroopType)
		options.PlayStyles = appendDistinct(options.PlayStyles, p.PlayStyle)
	}
	return options
}

// KingdomFacets derives the distinct facet values present in the
// collection, in first-seen order.
func KingdomFacets(kingdoms []*Kingdom) *KingdomFacetOptions {
	options := &KingdomFacetOptions{
		Seeds:    make([]string, 0),
		Statuses: make([]string, 0),
	}
	for _, k := range kingdoms {
		options.Seeds = appendDistinct(options.Seeds, k.Seed)
		options.Statuses = appendDistinct(options.Statuses, k.Status)
	}
	return options
}

// matchesSearch reports whether the query is a case-insensitive
// substring of any of the candidate fields. An empty query matches.
func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func appendDistinct(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
