package record

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Client = (*MemoryClient)(nil)

// MemoryClient is an in-memory record store used by tests and demos. Each
// instance owns its own state - there is no process-wide registry. It mirrors
// the remote store's observable behavior: assigned ids, created/updated
// stamps, sort support, and validation errors for unique-field violations.
type MemoryClient struct {
	mu          sync.RWMutex
	collections map[string]map[string]Record
	unique      map[string]string
}

type MemoryOption func(*MemoryClient)

// WithUniqueField enforces a unique constraint on one field of a collection,
// rejecting duplicates with the same validation error shape the remote store
// produces.
func WithUniqueField(collection, field string) MemoryOption {
	return func(c *MemoryClient) {
		c.unique[collection] = field
	}
}

func NewMemoryClient(opts ...MemoryOption) *MemoryClient {
	c := &MemoryClient{
		collections: make(map[string]map[string]Record),
		unique:      make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *MemoryClient) List(ctx context.Context, collection string, opts ListOptions) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]Record, 0, len(c.collections[collection]))
	for _, rec := range c.collections[collection] {
		records = append(records, cloneRecord(rec))
	}

	sortRecords(records, opts.Sort)

	return records, nil
}

func (c *MemoryClient) GetOne(ctx context.Context, collection, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, found := c.collections[collection][id]
	if !found {
		return nil, errRecordNotFound()
	}

	return cloneRecord(rec), nil
}

func (c *MemoryClient) Create(ctx context.Context, collection string, fields map[string]any) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if field, found := c.unique[collection]; found {
		for _, existing := range c.collections[collection] {
			if existing[field] == fields[field] {
				return nil, errValueNotUnique(field)
			}
		}
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	rec := Record{
		"id":             newRecordID(),
		"collectionName": collection,
		"created":        now,
		"updated":        now,
	}
	for key, val := range fields {
		rec[key] = val
	}

	if c.collections[collection] == nil {
		c.collections[collection] = make(map[string]Record)
	}
	c.collections[collection][rec.ID()] = rec

	return cloneRecord(rec), nil
}

func (c *MemoryClient) Update(ctx context.Context, collection, id string, fields map[string]any) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec, found := c.collections[collection][id]
	if !found {
		return nil, errRecordNotFound()
	}

	for key, val := range fields {
		rec[key] = val
	}
	rec["updated"] = time.Now().UTC().Format(time.RFC3339Nano)

	return cloneRecord(rec), nil
}

// UpdateFile stores only the file name - the in-memory store keeps no blobs.
func (c *MemoryClient) UpdateFile(
	ctx context.Context,
	collection, id, field, filename string,
	contents io.Reader,
) (Record, error) {
	if _, err := io.Copy(io.Discard, contents); err != nil {
		return nil, err
	}

	return c.Update(ctx, collection, id, map[string]any{field: filename})
}

func (c *MemoryClient) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.collections[collection][id]; !found {
		return errRecordNotFound()
	}

	delete(c.collections[collection], id)

	return nil
}

// newRecordID mimics the remote store's 15-character record identifiers.
func newRecordID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:15]
}

func cloneRecord(rec Record) Record {
	clone := make(Record, len(rec))
	for key, val := range rec {
		clone[key] = val
	}
	return clone
}

func sortRecords(records []Record, sortKey string) {
	if sortKey == "" {
		return
	}

	descending := strings.HasPrefix(sortKey, "-")
	field := strings.TrimPrefix(sortKey, "-")

	sort.SliceStable(records, func(i, j int) bool {
		less := records[i].GetString(field) < records[j].GetString(field)
		if descending {
			return !less && records[i].GetString(field) != records[j].GetString(field)
		}
		return less
	})
}

func errRecordNotFound() error {
	return &StatusError{
		Status:  http.StatusNotFound,
		Message: "The requested resource wasn't found.",
	}
}

func errValueNotUnique(field string) error {
	return &StatusError{
		Status:  http.StatusBadRequest,
		Message: "Failed to create record.",
		Data: map[string]any{
			field: map[string]any{
				"code":    "validation_not_unique",
				"message": fmt.Sprintf("Value must be unique for field %q.", field),
			},
		},
	}
}
