package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SeedGames_Creates_Demo_Catalog(t *testing.T) {
	// Arrange
	ctx := context.Background()

	_, err := fixture.seeder.ClearAllSessions(ctx)
	require.NoError(t, err)
	_, err = fixture.seeder.ClearAllGames(ctx)
	require.NoError(t, err)

	// Act
	result := fixture.seeder.SeedGames(ctx)

	// Assert
	require.Equal(t, 5, result.Succeeded)
	require.Equal(t, 0, result.Failed)

	games, err := fixture.games.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, games, 5)
}

func Test_SeedGames_Skips_Games_Already_Present(t *testing.T) {
	// Arrange
	ctx := context.Background()
	fixture.seeder.SeedGames(ctx)

	// Act
	result := fixture.seeder.SeedGames(ctx)

	// Assert
	require.Equal(t, 0, result.Succeeded)
	require.Equal(t, 5, result.Skipped)

	games, err := fixture.games.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, games, 5)
}

func Test_SeedSessions_Links_Sessions_To_Seeded_Games(t *testing.T) {
	// Arrange
	ctx := context.Background()
	fixture.seeder.SeedGames(ctx)

	_, err := fixture.seeder.ClearAllSessions(ctx)
	require.NoError(t, err)

	// Act
	result, err := fixture.seeder.SeedSessions(ctx)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 3, result.Succeeded)

	sessions, err := fixture.sessions.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	gamesByID := map[string]bool{}
	games, err := fixture.games.ListAll(ctx)
	require.NoError(t, err)
	for _, g := range games {
		gamesByID[g.ID] = true
	}

	for _, s := range sessions {
		require.True(t, gamesByID[s.GameID])
		require.NotEmpty(t, s.GameName)
	}
}
