package search

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

const duckDuckGoMaxResults = 5

// DuckDuckGo scrapes the DuckDuckGo lite HTML interface. No API key is
// required, which makes it the fallback provider for keyless deployments.
type DuckDuckGo struct {
	endpoint string
	client   *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo provider with a modest timeout.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		endpoint: "https://lite.duckduckgo.com/lite/",
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewDuckDuckGoWithClient creates a DuckDuckGo provider against a custom
// endpoint and client. Useful for tests.
func NewDuckDuckGoWithClient(endpoint string, client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{endpoint: endpoint, client: client}
}

// Name implements Provider.
func (d *DuckDuckGo) Name() string { return "duckduckgo" }

// Search implements Provider by scraping the lite HTML page. Positions are
// assigned by enumeration order (1-based).
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]core.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	form := url.Values{}
	form.Set("q", query)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &core.UpstreamError{Provider: "duckduckgo", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{Provider: "duckduckgo", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.UpstreamError{Provider: "duckduckgo", Err: err}
	}
	return parseLiteResults(string(body)), nil
}

var (
	ddgLinkPattern    = regexp.MustCompile(`<a[^>]*class=['"]result-link['"][^>]*href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	ddgLinkPatternAlt = regexp.MustCompile(`<a[^>]*href=['"]([^'"]+)['"][^>]*class=['"]result-link['"][^>]*>([^<]+)</a>`)
	ddgSnippetPattern = regexp.MustCompile(`<td[^>]*class=['"]result-snippet['"][^>]*>([^<]*(?:<[^>]+>[^<]*</[^>]+>)*[^<]*)</td>`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
)

// parseLiteResults extracts results from the lite HTML page, which pairs
// result links with snippet table cells.
func parseLiteResults(html string) []core.SearchResult {
	matches := ddgLinkPattern.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		matches = ddgLinkPatternAlt.FindAllStringSubmatch(html, -1)
	}
	snippets := ddgSnippetPattern.FindAllStringSubmatch(html, -1)

	var results []core.SearchResult
	for i, match := range matches {
		if len(match) < 3 {
			continue
		}
		link := strings.TrimSpace(match[1])
		title := cleanHTML(match[2])
		if link == "" || title == "" {
			continue
		}
		snippet := ""
		if i < len(snippets) && len(snippets[i]) > 1 {
			snippet = cleanHTML(snippets[i][1])
		}
		results = append(results, core.SearchResult{
			Position: len(results) + 1,
			Title:    title,
			Link:     link,
			Snippet:  snippet,
		})
		if len(results) >= duckDuckGoMaxResults {
			break
		}
	}
	return results
}

// cleanHTML strips tags and decodes the entities the lite page emits.
func cleanHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return strings.TrimSpace(replacer.Replace(s))
}
