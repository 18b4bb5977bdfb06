package search

import (
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// maxPageChars bounds fetched page text so it fits comfortably in a model
// prompt.
const maxPageChars = 5000

var (
	scriptPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	stylePattern  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagPattern    = regexp.MustCompile(`<[^>]+>`)
)

// PageFetcher retrieves a web page and reduces it to plain text.
type PageFetcher struct {
	client *http.Client
}

// NewPageFetcher creates a fetcher with a modest timeout.
func NewPageFetcher() *PageFetcher {
	return &PageFetcher{client: &http.Client{Timeout: 10 * time.Second}}
}

// NewPageFetcherWithClient creates a fetcher using the supplied HTTP client.
func NewPageFetcherWithClient(client *http.Client) *PageFetcher {
	return &PageFetcher{client: client}
}

// Fetch downloads the URL, strips scripts, styles and tags, collapses
// whitespace and truncates the text.
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	trimmed := strings.TrimSpace(pageURL)
	if trimmed == "" {
		return "", errors.New("fetch url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trimmed, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("fetch http " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	text := stripHTML(string(body))
	if len(text) > maxPageChars {
		text = text[:maxPageChars]
	}
	return text, nil
}

// stripHTML reduces an HTML document to line-per-block plain text.
func stripHTML(html string) string {
	text := scriptPattern.ReplaceAllString(html, "")
	text = stylePattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
