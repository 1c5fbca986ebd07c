package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeTiersForCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		completed int
		want      []string
	}{
		{
			name:      "no completed donations earns nothing",
			completed: 0,
			want:      nil,
		},
		{
			name:      "first donation unlocks the first tier",
			completed: 1,
			want:      []string{BadgeFirstTimeDonor},
		},
		{
			name:      "four donations stay below the second tier",
			completed: 4,
			want:      []string{BadgeFirstTimeDonor},
		},
		{
			name:      "fifth donation unlocks the second tier",
			completed: 5,
			want:      []string{BadgeFirstTimeDonor, BadgeCommunityHero},
		},
		{
			name:      "nine donations stay below the third tier",
			completed: 9,
			want:      []string{BadgeFirstTimeDonor, BadgeCommunityHero},
		},
		{
			name:      "tenth donation unlocks every tier",
			completed: 10,
			want:      []string{BadgeFirstTimeDonor, BadgeCommunityHero, BadgeLifeSaver},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, BadgeTiersForCount(tt.completed))
		})
	}
}
