package domain

import (
	"testing"
	"time"

	"github.com/thorvi/playtrack/internal/record"

	"github.com/stretchr/testify/require"
)

func Test_FromRecord_Defaults_All_Optional_Fields(t *testing.T) {
	// Arrange
	rec := record.Record{"id": "abc123", "name": "Hollow Knight"}

	// Act
	game := FromRecord(rec)

	// Assert
	require.Equal(t, "abc123", game.ID)
	require.Equal(t, "Hollow Knight", game.Name)
	require.Equal(t, "Outro", game.Genre)
	require.False(t, game.IsFavorite)
	require.Equal(t, "https://via.placeholder.com/150", game.Image)
	require.Equal(t, "Sem descrição", game.Description)
	require.Equal(t, "Outro", game.Platform)
	require.Equal(t, "Ano não informado", game.ReleaseYear)
	require.False(t, game.CreatedAt.IsZero())
	require.False(t, game.UpdatedAt.IsZero())
}

func Test_FromRecord_Copies_Present_Fields_Verbatim(t *testing.T) {
	// Arrange
	rec := record.Record{
		"id":          "abc123",
		"name":        "Elden Ring",
		"genre":       "RPG",
		"isFavorite":  true,
		"image":       "https://images.example.dev/elden-ring.jpg",
		"description": "Um RPG de ação desafiador.",
		"platform":    "PC",
		"releaseYear": "2022",
		"created":     "2024-05-01 10:00:00.000Z",
		"updated":     "2024-06-01 11:30:00.000Z",
	}

	// Act
	game := FromRecord(rec)

	// Assert
	require.Equal(t, "Elden Ring", game.Name)
	require.Equal(t, "RPG", game.Genre)
	require.True(t, game.IsFavorite)
	require.Equal(t, "https://images.example.dev/elden-ring.jpg", game.Image)
	require.Equal(t, "Um RPG de ação desafiador.", game.Description)
	require.Equal(t, "PC", game.Platform)
	require.Equal(t, "2022", game.ReleaseYear)
	require.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), game.CreatedAt)
	require.Equal(t, time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC), game.UpdatedAt)
}

func Test_FromRecord_Never_Fails_On_Wrongly_Typed_Fields(t *testing.T) {
	// Arrange - a malformed bag with non-string values.
	rec := record.Record{"id": "abc123", "name": "X", "genre": 42, "isFavorite": "yes"}

	// Act
	game := FromRecord(rec)

	// Assert - wrongly typed fields fall back to defaults.
	require.Equal(t, "Outro", game.Genre)
	require.False(t, game.IsFavorite)
}
