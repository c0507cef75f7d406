package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetadata_OpenGraphWins(t *testing.T) {
	html := `<html><head>
		<title>Plain Title</title>
		<meta property="og:title" content="OG Title">
		<meta name="description" content="plain description">
		<meta property="og:description" content="og description">
	</head><body></body></html>`

	meta, err := ExtractMetadata(html)
	require.NoError(t, err)
	assert.Equal(t, "OG Title", meta.Title)
	assert.Equal(t, "og description", meta.Description)
}

func TestExtractMetadata_FallsBackToHTMLTags(t *testing.T) {
	html := `<html><head>
		<title>  Learn SQL — Free Course  </title>
		<meta name="description" content="An interactive SQL course.">
	</head><body></body></html>`

	meta, err := ExtractMetadata(html)
	require.NoError(t, err)
	assert.Equal(t, "Learn SQL — Free Course", meta.Title)
	assert.Equal(t, "An interactive SQL course.", meta.Description)
}

func TestExtractMetadata_TitleOnly(t *testing.T) {
	meta, err := ExtractMetadata(`<html><head><title>Just a Title</title></head></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Just a Title", meta.Title)
	assert.Empty(t, meta.Description)
}

func TestExtractMetadata_EmptyPage(t *testing.T) {
	_, err := ExtractMetadata(`<html><head></head><body></body></html>`)
	assert.Error(t, err)
}

func TestExtractMetadata_TruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("x", 2000)
	html := `<html><head><meta name="description" content="` + long + `"></head></html>`

	meta, err := ExtractMetadata(html)
	require.NoError(t, err)
	assert.Len(t, meta.Description, maxDescriptionLength)
}
