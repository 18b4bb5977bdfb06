// Package persona heuristically derives structured person profiles from
// normalized search results. Extraction is pure and deterministic: every
// field is best-effort, pattern-matched from the result's title, snippet and
// link, and never fails.
package persona

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

const (
	maxJobTitleChars = 100
	maxBioChars      = 500
)

var (
	nonNamePattern    = regexp.MustCompile(`[^\w\s]`)
	experiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|year's)\s+(?:of\s+)?(?:experience|expertise)`)
	emailPattern      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	companyPattern    = regexp.MustCompile(`(?:at|from)\s+([A-Z][A-Za-z\s&]+?)(?:\s|,|-|$)`)
)

// socialPlatforms are probed in fixed order over snippet + " " + link.
var socialPlatforms = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"linkedin", regexp.MustCompile(`(?i)(?:linkedin\.com/in/|@\w+.*linkedin)`)},
	{"twitter", regexp.MustCompile(`(?i)(?:twitter\.com/|@\w+(?:\s|$))`)},
	{"github", regexp.MustCompile(`(?i)github\.com/[\w-]+`)},
}

// Extract derives a PersonaRecord from one search result. Fields that no
// heuristic matches stay empty.
func Extract(result core.SearchResult) core.PersonaRecord {
	record := core.PersonaRecord{
		SourceURL: result.Link,
		Bio:       truncate(result.Snippet, maxBioChars),
	}

	title := result.Title
	snippet := result.Snippet

	// Titles usually read "FirstName LastName | Company/Title"; a " - "
	// separator is the fallback.
	namePart := title
	if strings.Contains(title, "|") {
		namePart = strings.SplitN(title, "|", 2)[0]
	} else if strings.Contains(title, " - ") {
		namePart = strings.SplitN(title, " - ", 2)[0]
	}
	namePart = strings.TrimSpace(nonNamePattern.ReplaceAllString(strings.TrimSpace(namePart), ""))
	if namePart != "" {
		record.FullName = namePart
	}

	// The job title is only derived from a pipe-delimited title.
	if strings.Contains(title, "|") {
		titlePart := strings.TrimSpace(strings.SplitN(title, "|", 2)[1])
		if titlePart != "" {
			record.JobTitle = truncate(titlePart, maxJobTitleChars)
		}
	}

	if m := experiencePattern.FindStringSubmatch(snippet); m != nil {
		record.Experience = fmt.Sprintf("%s+ years", m[1])
	}

	if m := emailPattern.FindString(snippet); m != "" {
		record.Email = m
	}

	haystack := snippet + " " + result.Link
	var social []string
	for _, platform := range socialPlatforms {
		if m := platform.pattern.FindString(haystack); m != "" {
			social = append(social, fmt.Sprintf("%s: %s", platform.name, m))
		}
	}
	if len(social) > 0 {
		record.SocialMedia = strings.Join(social, " | ")
	}

	if m := companyPattern.FindStringSubmatch(snippet); m != nil {
		record.Company = strings.TrimSpace(m[1])
	}

	return record
}

// ExtractMany applies Extract to each result independently, preserving input
// order and skipping empty entries rather than failing the batch.
func ExtractMany(results []core.SearchResult) []core.PersonaRecord {
	records := make([]core.PersonaRecord, 0, len(results))
	for _, result := range results {
		if result.Title == "" && result.Snippet == "" && result.Link == "" {
			continue
		}
		records = append(records, Extract(result))
	}
	return records
}

// truncate limits s to max characters, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}
