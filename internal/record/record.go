package record

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Record is the open, weakly-typed field bag returned by the remote store.
// It never crosses a domain boundary directly - the domain mappers are the
// single chokepoint that normalize it into typed values.
type Record map[string]any

func (r Record) ID() string {
	return r.GetString("id")
}

func (r Record) CollectionName() string {
	return r.GetString("collectionName")
}

// GetString returns the field as a string, or "" when absent or not a string.
func (r Record) GetString(key string) string {
	if val, ok := r[key].(string); ok {
		return val
	}

	return ""
}

// GetBool returns the field as a bool, or false when absent or not a bool.
func (r Record) GetBool(key string) bool {
	if val, ok := r[key].(bool); ok {
		return val
	}

	return false
}

// timeFormats covers the remote store's timestamp layout plus RFC 3339,
// which the in-memory client emits.
var timeFormats = []string{
	"2006-01-02 15:04:05.000Z",
	time.RFC3339Nano,
	time.RFC3339,
}

// GetTime parses the field as a timestamp. The second return value is false
// when the field is absent or unparseable.
func (r Record) GetTime(key string) (time.Time, bool) {
	raw := r.GetString(key)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ListOptions control a List call. Sort follows the remote store's
// convention: field name for ascending, "-" prefix for descending.
type ListOptions struct {
	Sort string
}

// Client is the boundary to the remote record store. Implementations expose
// CRUD over named collections and nothing else - no caching, no retries.
type Client interface {
	List(ctx context.Context, collection string, opts ListOptions) ([]Record, error)
	GetOne(ctx context.Context, collection, id string) (Record, error)
	Create(ctx context.Context, collection string, fields map[string]any) (Record, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) (Record, error)
	UpdateFile(ctx context.Context, collection, id, field, filename string, contents io.Reader) (Record, error)
	Delete(ctx context.Context, collection, id string) error
}

// FileURL resolves a file-valued field to a downloadable URL by concatenating
// the configured base address with collection name, record id, and file name.
func FileURL(baseURL, collection, id, filename string) string {
	return fmt.Sprintf("%s/api/files/%s/%s/%s", baseURL, collection, id, filename)
}
