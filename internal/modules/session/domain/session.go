package domain

import (
	"fmt"
	"time"

	"github.com/thorvi/playtrack/internal/record"
)

// Durations a caller may pick from when scheduling a session.
var Durations = []string{"30 minutos", "1 hora", "2 horas"}

type Session struct {
	ID            string    `json:"id"`
	GameID        string    `json:"gameId"`
	GameName      string    `json:"gameName"`
	ScheduledTime string    `json:"scheduledTime"`
	Duration      string    `json:"duration"`
	IsCompleted   bool      `json:"isCompleted"`
	Recordacao    string    `json:"recordacao,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SessionInput is a Session without the backend-assigned fields.
type SessionInput struct {
	GameID        string `json:"gameId"`
	GameName      string `json:"gameName"`
	ScheduledTime string `json:"scheduledTime"`
	Duration      string `json:"duration"`
	IsCompleted   bool   `json:"isCompleted"`
}

// Fields flattens the input into the record store's field bag.
func (i SessionInput) Fields() map[string]any {
	return map[string]any{
		"gameId":        i.GameID,
		"gameName":      i.GameName,
		"scheduledTime": i.ScheduledTime,
		"duration":      i.Duration,
		"isCompleted":   i.IsCompleted,
	}
}

// FromRecord normalizes one backend record into a Session. When the record
// carries a picture file reference, the photo URL is synthesized from the
// configured base address; otherwise a previously stored direct URL passes
// through unchanged.
func FromRecord(baseURL string, rec record.Record) Session {
	recordacao := rec.GetString("recordacao")
	if picture := rec.GetString("picture"); picture != "" {
		recordacao = record.FileURL(baseURL, rec.CollectionName(), rec.ID(), picture)
	}

	session := Session{
		ID:            rec.ID(),
		GameID:        rec.GetString("gameId"),
		GameName:      rec.GetString("gameName"),
		ScheduledTime: rec.GetString("scheduledTime"),
		Duration:      rec.GetString("duration"),
		IsCompleted:   rec.GetBool("isCompleted"),
		Recordacao:    recordacao,
	}

	now := time.Now()

	session.CreatedAt = now
	if created, ok := rec.GetTime("created"); ok {
		session.CreatedAt = created
	}

	session.UpdatedAt = now
	if updated, ok := rec.GetTime("updated"); ok {
		session.UpdatedAt = updated
	}

	return session
}

// FormatScheduledTime renders the display time for a session scheduled right
// now: "Hoje - HH:MM" from the current wall clock. The duration argument is
// accepted but not incorporated into the result.
func FormatScheduledTime(duration string) string {
	now := time.Now()
	return fmt.Sprintf("Hoje - %02d:%02d", now.Hour(), now.Minute())
}
