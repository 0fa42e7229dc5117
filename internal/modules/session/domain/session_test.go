package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/thorvi/playtrack/internal/record"

	"github.com/stretchr/testify/require"
)

func Test_FromRecord_Synthesizes_Photo_URL_From_File_Field(t *testing.T) {
	// Arrange
	rec := record.Record{
		"id":             "abc123",
		"collectionName": "sessions",
		"gameId":         "g1",
		"gameName":       "Minecraft",
		"picture":        "photo_x7.jpg",
		"recordacao":     "https://old.example.dev/direct.jpg",
	}

	// Act
	session := FromRecord("https://pb.example.dev", rec)

	// Assert - the file reference wins over the stored direct URL.
	require.Equal(t, "https://pb.example.dev/api/files/sessions/abc123/photo_x7.jpg", session.Recordacao)
}

func Test_FromRecord_Passes_Through_Direct_URL_Without_File_Field(t *testing.T) {
	// Arrange
	rec := record.Record{
		"id":         "abc123",
		"recordacao": "https://old.example.dev/direct.jpg",
	}

	// Act
	session := FromRecord("https://pb.example.dev", rec)

	// Assert
	require.Equal(t, "https://old.example.dev/direct.jpg", session.Recordacao)
}

func Test_FromRecord_Copies_Required_Fields(t *testing.T) {
	// Arrange
	rec := record.Record{
		"id":            "abc123",
		"gameId":        "g1",
		"gameName":      "FIFA 24",
		"scheduledTime": "Sexta - 21:00",
		"duration":      "1 hora",
		"isCompleted":   true,
	}

	// Act
	session := FromRecord("", rec)

	// Assert
	require.Equal(t, "abc123", session.ID)
	require.Equal(t, "g1", session.GameID)
	require.Equal(t, "FIFA 24", session.GameName)
	require.Equal(t, "Sexta - 21:00", session.ScheduledTime)
	require.Equal(t, "1 hora", session.Duration)
	require.True(t, session.IsCompleted)
	require.Empty(t, session.Recordacao)
	require.False(t, session.CreatedAt.IsZero())
}

func Test_FormatScheduledTime_Returns_Today_With_Current_Clock(t *testing.T) {
	// Act
	formatted := FormatScheduledTime("1 hora")

	// Assert - the duration argument is not incorporated.
	now := time.Now()
	require.Contains(t, []string{
		fmt.Sprintf("Hoje - %02d:%02d", now.Hour(), now.Minute()),
		// Tolerate the minute ticking over between Act and Assert.
		fmt.Sprintf("Hoje - %02d:%02d", now.Add(-time.Minute).Hour(), now.Add(-time.Minute).Minute()),
	}, formatted)
}

func Test_SessionInput_Fields_Excludes_ID(t *testing.T) {
	// Arrange
	input := SessionInput{
		GameID:        "g1",
		GameName:      "Minecraft",
		ScheduledTime: "Hoje - 18:30",
		Duration:      "30 minutos",
	}

	// Act
	fields := input.Fields()

	// Assert
	require.NotContains(t, fields, "id")
	require.Equal(t, "g1", fields["gameId"])
	require.Equal(t, "Minecraft", fields["gameName"])
	require.Equal(t, "Hoje - 18:30", fields["scheduledTime"])
	require.Equal(t, "30 minutos", fields["duration"])
	require.Equal(t, false, fields["isCompleted"])
}
