package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTeamIsMember(t *testing.T) {
	team := &Team{
		OwnerID: 1,
		Members: []TeamMember{
			{TeamID: 10, UserID: 1},
			{TeamID: 10, UserID: 2},
		},
	}

	require.True(t, team.IsMember(1))
	require.True(t, team.IsMember(2))
	require.False(t, team.IsMember(3))
}

func TestTeamChangeOwnerPromotesEarliestJoiner(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	team := &Team{
		ID:      10,
		OwnerID: 1,
		Members: []TeamMember{
			{TeamID: 10, UserID: 1, JoinedAt: base},
			{TeamID: 10, UserID: 3, JoinedAt: base.Add(48 * time.Hour)},
			{TeamID: 10, UserID: 2, JoinedAt: base.Add(24 * time.Hour)},
		},
	}

	removed, deleted := team.ChangeOwner()

	require.False(t, deleted)
	require.Equal(t, uint64(1), removed)
	require.Equal(t, uint64(2), team.OwnerID)
	require.False(t, team.IsMember(1))
	require.Len(t, team.Members, 2)
}

func TestTeamChangeOwnerWithSoleMemberDeletesTeam(t *testing.T) {
	team := &Team{
		ID:      10,
		OwnerID: 1,
		Members: []TeamMember{
			{TeamID: 10, UserID: 1},
		},
	}

	removed, deleted := team.ChangeOwner()

	require.True(t, deleted)
	require.Zero(t, removed)
	require.True(t, team.IsDeleted)
	require.NotNil(t, team.DeletedAt)
}
