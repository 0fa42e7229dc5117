package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// listPageSize is the per-page size used when draining a full collection.
const listPageSize = 500

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to a PocketBase-style record store over its REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(baseURL string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// BaseURL returns the configured base address, used to resolve file URLs.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

type listResponse struct {
	Page    int      `json:"page"`
	PerPage int      `json:"perPage"`
	Items   []Record `json:"items"`
}

// List drains the full collection, page by page.
func (c *HTTPClient) List(ctx context.Context, collection string, opts ListOptions) ([]Record, error) {
	var records []Record

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("perPage", strconv.Itoa(listPageSize))
		query.Set("skipTotal", "1")
		if opts.Sort != "" {
			query.Set("sort", opts.Sort)
		}

		endpoint := fmt.Sprintf("%s/api/collections/%s/records?%s", c.baseURL, collection, query.Encode())

		var body listResponse
		if err := c.do(ctx, http.MethodGet, endpoint, nil, "", &body); err != nil {
			return nil, err
		}

		records = append(records, body.Items...)

		if len(body.Items) < listPageSize {
			return records, nil
		}
	}
}

func (c *HTTPClient) GetOne(ctx context.Context, collection, id string) (Record, error) {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, id)

	var rec Record
	if err := c.do(ctx, http.MethodGet, endpoint, nil, "", &rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (c *HTTPClient) Create(ctx context.Context, collection string, fields map[string]any) (Record, error) {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records", c.baseURL, collection)

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(payload), "application/json", &rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (c *HTTPClient) Update(ctx context.Context, collection, id string, fields map[string]any) (Record, error) {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, id)

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := c.do(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload), "application/json", &rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// UpdateFile uploads a file into a file-valued field via a multipart PATCH.
func (c *HTTPClient) UpdateFile(
	ctx context.Context,
	collection, id, field, filename string,
	contents io.Reader,
) (Record, error) {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, id)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(part, contents); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	var rec Record
	if err := c.do(ctx, http.MethodPatch, endpoint, &buf, writer.FormDataContentType(), &rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (c *HTTPClient) Delete(ctx context.Context, collection, id string) error {
	endpoint := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, id)
	return c.do(ctx, http.MethodDelete, endpoint, nil, "", nil)
}

type errorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("record store: %s %s: %w", method, endpoint, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Status: resp.StatusCode}

		var remoteErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&remoteErr); err == nil {
			statusErr.Message = remoteErr.Message
			statusErr.Data = remoteErr.Data
		}

		return statusErr
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
