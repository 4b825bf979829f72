// Package media fetches provider-hosted media to local temp files.
// The extractor only ever sees a readable local path and a coarse type.
package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gramsetu/noticeboard/internal/core/model"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

// Download fetches a provider media URL (basic-auth protected) into a
// temp file and returns its path. The caller removes the file when done.
func Download(ctx context.Context, url, username, password string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build media request: %w", err)
	}
	req.SetBasicAuth(username, password)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("media download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("media download returned status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp("", "noticeboard-media-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return f.Name(), nil
}

// CoarseType maps the provider's content type to the pipeline's
// image/pdf/video tag. Anything unrecognized is treated as an image,
// the overwhelmingly common flyer form.
func CoarseType(contentType string) model.MediaType {
	switch {
	case strings.HasPrefix(contentType, "video/"):
		return model.MediaVideo
	case contentType == "application/pdf":
		return model.MediaPDF
	default:
		return model.MediaImage
	}
}
