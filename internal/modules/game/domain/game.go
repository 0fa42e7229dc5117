package domain

import (
	"time"

	"github.com/thorvi/playtrack/internal/record"
)

// Fallback values substituted for fields the backend record doesn't carry.
const (
	DefaultGenre       = "Outro"
	DefaultImage       = "https://via.placeholder.com/150"
	DefaultDescription = "Sem descrição"
	DefaultPlatform    = "Outro"
	DefaultReleaseYear = "Ano não informado"
)

type Game struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Genre       string    `json:"genre"`
	IsFavorite  bool      `json:"isFavorite"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Platform    string    `json:"platform"`
	ReleaseYear string    `json:"releaseYear"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromRecord normalizes one backend record into a Game, substituting fixed
// defaults for absent optional fields. Total - it never fails on a
// well-formed record.
func FromRecord(rec record.Record) Game {
	game := Game{
		ID:          rec.ID(),
		Name:        rec.GetString("name"),
		Genre:       stringOrDefault(rec, "genre", DefaultGenre),
		IsFavorite:  rec.GetBool("isFavorite"),
		Image:       stringOrDefault(rec, "image", DefaultImage),
		Description: stringOrDefault(rec, "description", DefaultDescription),
		Platform:    stringOrDefault(rec, "platform", DefaultPlatform),
		ReleaseYear: stringOrDefault(rec, "releaseYear", DefaultReleaseYear),
	}

	now := time.Now()

	game.CreatedAt = now
	if created, ok := rec.GetTime("created"); ok {
		game.CreatedAt = created
	}

	game.UpdatedAt = now
	if updated, ok := rec.GetTime("updated"); ok {
		game.UpdatedAt = updated
	}

	return game
}

func stringOrDefault(rec record.Record, key, defaultVal string) string {
	if val := rec.GetString(key); val != "" {
		return val
	}

	return defaultVal
}
