package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Attachment is a file carried by a multipart request: a profile photo or a
// module resource document.
type Attachment struct {
	// Field is the multipart form field name, e.g. "file" or "photo".
	Field string
	// Filename is the original client-side name, preserved so the server
	// can store it as original_name.
	Filename string
	// Content is the file payload.
	Content io.Reader
}

// PostMultipart issues a POST with multipart/form-data encoding: the given
// form fields plus one attachment. Used for profile photos and module
// resources with binary content.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, attachment *Attachment, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	if attachment != nil {
		part, err := writer.CreateFormFile(attachment.Field, attachment.Filename)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, attachment.Content); err != nil {
			return fmt.Errorf("failed to copy attachment: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}
