package persona

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

func TestExtractNameAndJobTitleFromPipedTitle(t *testing.T) {
	record := Extract(core.SearchResult{
		Title: "Jane Doe | Senior Engineer at Acme",
	})

	assert.Equal(t, "Jane Doe", record.FullName)
	assert.Equal(t, "Senior Engineer at Acme", record.JobTitle)
}

func TestExtractNameFromDashTitle(t *testing.T) {
	record := Extract(core.SearchResult{Title: "John Smith - Acme Corp"})

	assert.Equal(t, "John Smith", record.FullName)
	assert.Empty(t, record.JobTitle, "job title requires a pipe delimiter")
}

func TestExtractExperience(t *testing.T) {
	record := Extract(core.SearchResult{
		Snippet: "An engineering leader with 10+ years of experience in distributed systems.",
	})

	assert.Equal(t, "10+ years", record.Experience)
}

func TestExtractEmail(t *testing.T) {
	record := Extract(core.SearchResult{
		Snippet: "For partnerships contact: jane@acme.com or call the office.",
	})

	assert.Equal(t, "jane@acme.com", record.Email)
}

func TestExtractSocialHandles(t *testing.T) {
	record := Extract(core.SearchResult{
		Link:    "https://linkedin.com/in/janedoe",
		Snippet: "Open source work at github.com/janedoe",
	})

	assert.Contains(t, record.SocialMedia, "linkedin: ")
	assert.Contains(t, record.SocialMedia, "github: github.com/janedoe")
	assert.Contains(t, record.SocialMedia, " | ")
}

func TestExtractCompany(t *testing.T) {
	record := Extract(core.SearchResult{
		Snippet: "Jane leads the platform team at Acme and mentors engineers.",
	})

	assert.Equal(t, "Acme", record.Company)
}

func TestExtractBioTruncatedTo500(t *testing.T) {
	long := strings.Repeat("x", 900)
	record := Extract(core.SearchResult{Snippet: long})

	assert.Len(t, record.Bio, 500)
}

func TestExtractBioTruncatedOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 900)
	record := Extract(core.SearchResult{Snippet: long})

	assert.True(t, utf8.ValidString(record.Bio))
	assert.Equal(t, 500, utf8.RuneCountInString(record.Bio))
}

func TestExtractJobTitleTruncatedOnRuneBoundary(t *testing.T) {
	record := Extract(core.SearchResult{
		Title: "Jane Doe | " + strings.Repeat("ü", 150),
	})

	assert.True(t, utf8.ValidString(record.JobTitle))
	assert.Equal(t, 100, utf8.RuneCountInString(record.JobTitle))
}

func TestExtractSourceURL(t *testing.T) {
	record := Extract(core.SearchResult{Link: "https://example.com/profile"})

	assert.Equal(t, "https://example.com/profile", record.SourceURL)
}

func TestExtractEmptyResultLeavesFieldsAbsent(t *testing.T) {
	record := Extract(core.SearchResult{})

	assert.Empty(t, record.FullName)
	assert.Empty(t, record.JobTitle)
	assert.Empty(t, record.Company)
	assert.Empty(t, record.Experience)
	assert.Empty(t, record.Email)
	assert.Empty(t, record.SocialMedia)
	assert.Empty(t, record.Bio)
}

func TestExtractManyPreservesOrderAndSkipsEmpty(t *testing.T) {
	records := ExtractMany([]core.SearchResult{
		{Title: "Jane Doe | CTO"},
		{},
		{Title: "John Smith | CEO"},
	})

	require.Len(t, records, 2)
	assert.Equal(t, "Jane Doe", records[0].FullName)
	assert.Equal(t, "John Smith", records[1].FullName)
}
