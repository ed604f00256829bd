// Package netx uploads files to presigned object-storage URLs.
package netx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrUploadFailed = errors.New("upload failed")

// maxErrorBody caps how much of a failed response is quoted in the error.
const maxErrorBody = 512

// UploadToPresignedURL PUTs data to url. The content type must match the one
// the URL was signed for. A nil client means http.DefaultClient.
func UploadToPresignedURL(ctx context.Context, client *http.Client, url, contentType string, data []byte) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s; body: %s", ErrUploadFailed, resp.Status, string(b))
	}
	return nil
}
