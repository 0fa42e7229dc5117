package record

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_HTTPClient_List_Drains_All_Pages(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/collections/games/records", r.URL.Path)
		require.Equal(t, "name", r.URL.Query().Get("sort"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)

		items := make([]map[string]any, 0, listPageSize)
		if page == 1 {
			for i := 0; i < listPageSize; i++ {
				items = append(items, map[string]any{"id": fmt.Sprintf("rec%d", i)})
			}
		} else {
			items = append(items, map[string]any{"id": "last"})
		}

		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"page":  page,
			"items": items,
		}))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())

	// Act
	records, err := client.List(context.Background(), "games", ListOptions{Sort: "name"})

	// Assert
	require.NoError(t, err)
	require.Len(t, records, listPageSize+1)
	require.Equal(t, "last", records[listPageSize].ID())
}

func Test_HTTPClient_GetOne_Maps_404_To_StatusError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"The requested resource wasn't found.","data":{}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())

	// Act
	_, err := client.GetOne(context.Background(), "games", "missing")

	// Assert
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func Test_HTTPClient_Create_Posts_Fields_And_Decodes_Record(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/collections/sessions/records", r.URL.Path)

		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		require.Equal(t, "Minecraft", fields["gameName"])

		fields["id"] = "abc123def456ghi"
		fields["created"] = "2024-05-01 10:00:00.000Z"
		require.NoError(t, json.NewEncoder(w).Encode(fields))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())

	// Act
	rec, err := client.Create(context.Background(), "sessions", map[string]any{"gameName": "Minecraft"})

	// Assert
	require.NoError(t, err)
	require.Equal(t, "abc123def456ghi", rec.ID())
	require.Equal(t, "Minecraft", rec.GetString("gameName"))
}

func Test_HTTPClient_Create_Surfaces_Validation_Data(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"code": 400,
			"message": "Failed to create record.",
			"data": {"name": {"code": "validation_not_unique", "message": "Value must be unique."}}
		}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())

	// Act
	_, err := client.Create(context.Background(), "games", map[string]any{"name": "Hades"})

	// Assert
	require.Error(t, err)
	require.True(t, HasFieldError(err, "name"))
}

func Test_HTTPClient_Update_Patches_Record(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/collections/games/records/abc", r.URL.Path)

		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"id": "abc", "isFavorite": true}))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())

	// Act
	rec, err := client.Update(context.Background(), "games", "abc", map[string]any{"isFavorite": true})

	// Assert
	require.NoError(t, err)
	require.True(t, rec.GetBool("isFavorite"))
}

func Test_HTTPClient_Delete_Accepts_204(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, zap.NewNop())

	// Act
	err := client.Delete(context.Background(), "sessions", "abc")

	// Assert
	require.NoError(t, err)
}

func Test_FileURL_Concatenates_Base_Collection_ID_And_Name(t *testing.T) {
	// Act
	url := FileURL("https://pb.example.dev", "sessions", "abc123", "photo.jpg")

	// Assert
	require.Equal(t, "https://pb.example.dev/api/files/sessions/abc123/photo.jpg", url)
}
