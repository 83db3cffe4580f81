package image_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wiiktor22/expo/image"
)

func TestParseSourceHTTP(t *testing.T) {
	src, err := image.ParseSource("HTTPS://cdn.example.com/assets/pic.png?w=200")
	require.NoError(t, err)

	assert.Equal(t, image.SCHEME_HTTPS, src.Scheme)
	assert.Equal(t, "cdn.example.com", src.URL.Host)
	assert.Equal(t, "/assets/pic.png", src.URL.Path)
}

func TestParseSourceFile(t *testing.T) {
	src, err := image.ParseSource("file:///var/app/images/pic.png")
	require.NoError(t, err)

	assert.Equal(t, image.SCHEME_FILE, src.Scheme)
	assert.Equal(t, "/var/app/images/pic.png", src.URL.Path)
}

func TestParseSourceData(t *testing.T) {
	src, err := image.ParseSource("data:image/png;base64,AAAA")
	require.NoError(t, err)

	assert.Equal(t, image.SCHEME_DATA, src.Scheme)
	assert.Equal(t, "image/png;base64,AAAA", src.URL.Opaque)
}

func TestParseSourceMissingScheme(t *testing.T) {
	_, err := image.ParseSource("assets/pic.png")
	assert.Error(t, err)
}

func TestParseSourceString(t *testing.T) {
	src, err := image.ParseSource("https://example.com/pic.png")
	require.NoError(t, err)
	assert.Contains(t, src.String(), "scheme=https")
}
