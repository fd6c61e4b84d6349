// Package objstore wraps the external blob storage service used for product
// image uploads. Uploads are plain HTTP PUTs against the store's bucket
// endpoint; the returned key is resolved to a public URL when rendered.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Storage is the interface the catalog write path depends on.
type Storage interface {
	Upload(ctx context.Context, data []byte, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Client talks to the blob storage HTTP API.
type Client struct {
	baseURL    string
	bucket     string
	httpClient *http.Client
}

// NewClient constructs a new client for the given store endpoint and bucket.
func NewClient(baseURL, bucket string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Ping checks if the remote storage service is available.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/health", c.baseURL), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("objstore returned status %d", resp.StatusCode)
	}
	return nil
}

// Upload stores data under key and returns the stored object key.
func (c *Client) Upload(ctx context.Context, data []byte, key string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}
	return key, nil
}

// Delete removes the object stored under key. Missing objects are not an
// error; delete is used for best-effort cleanup.
func (c *Client) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(key), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete failed with status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucket, strings.TrimLeft(key, "/"))
}
