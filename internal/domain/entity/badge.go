// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Canonical badge names. The catalog is seeded once; awarding looks badges
// up by these names.
const (
	BadgeFirstTimeDonor = "First-Time Donor"
	BadgeCommunityHero  = "Community Hero"
	BadgeLifeSaver      = "Life Saver"
)

// Badge is a recognition tier awarded for cumulative completed donations.
type Badge struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the badge.
	Name        string    // Unique display name, one of the canonical names above.
	Description string    // Short description shown next to the badge.
	IconClass   string    // CSS icon class used by clients when rendering.
	CreatedAt   time.Time // Timestamp of when the badge was created.
}

// badgeThreshold pairs a completed-donation count with the badge it unlocks.
type badgeThreshold struct {
	count int
	name  string
}

// Thresholds are cumulative: a donor with ten completed donations holds all
// three tiers.
var badgeThresholds = []badgeThreshold{
	{count: 1, name: BadgeFirstTimeDonor},
	{count: 5, name: BadgeCommunityHero},
	{count: 10, name: BadgeLifeSaver},
}

// BadgeTiersForCount returns the names of every badge a donor with the given
// completed-donation count qualifies for, in ascending threshold order.
func BadgeTiersForCount(completed int) []string {
	var tiers []string
	for _, t := range badgeThresholds {
		if completed >= t.count {
			tiers = append(tiers, t.name)
		}
	}

	return tiers
}

// SeedBadges is the canonical badge catalog used by the seeder.
func SeedBadges() []Badge {
	return []Badge{
		{Name: BadgeFirstTimeDonor, Description: "Completed your first donation!", IconClass: "fas fa-award"},
		{Name: BadgeCommunityHero, Description: "Completed 5 donations!", IconClass: "fas fa-medal"},
		{Name: BadgeLifeSaver, Description: "Completed 10+ donations!", IconClass: "fas fa-heart"},
	}
}
