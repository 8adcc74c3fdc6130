package imaging

import (
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
)

// IsURL reports whether s looks like an http(s) source rather than a file
// path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch downloads and decodes the image at url.
//
// Transient HTTP failures are retried by the client; a non-2xx final status
// is an error. The decoded image is returned along with its format.
func Fetch(url string) (image.Image, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image, url=%s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image, status=%d, url=%s", resp.StatusCode, url)
	}

	img, _, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fetched image, url=%s: %w", url, err)
	}
	return img, nil
}
