package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 9))
	assert.Equal(t, 1, TotalPages(9, 9))
	assert.Equal(t, 2, TotalPages(10, 9))
	assert.Equal(t, 3, TotalPages(25, 9))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(0), Offset(1, 9))
	assert.Equal(t, int64(9), Offset(2, 9))
	assert.Equal(t, int64(0), Offset(0, 9))
	assert.Equal(t, int64(0), Offset(3, 0))
	assert.Equal(t, int64(math.MaxInt64), Offset(2049638230412172402, 9))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "zhk-solnechnyy", Slugify("ЖК «Солнечный»", 0))
	assert.Equal(t, "photo-1", Slugify("  Photo #1 ", 0))
	assert.Equal(t, "", Slugify("!!!", 0))
	assert.Equal(t, "abc", Slugify("abc-def", 4))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(54.73, 55.97))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))

	v, ok := ParseCoordinate("54.7351")
	assert.True(t, ok)
	assert.InDelta(t, 54.7351, v, 1e-9)

	_, ok = ParseCoordinate("north")
	assert.False(t, ok)
}

func TestVideoHelpers(t *testing.T) {
	src, ok := ExtractIframeSrc(`<iframe width="560" src='https://rutube.ru/play/embed/abc/' allowfullscreen></iframe>`)
	assert.True(t, ok)
	assert.Equal(t, "https://rutube.ru/play/embed/abc/", src)

	_, ok = ExtractIframeSrc("<iframe></iframe>")
	assert.False(t, ok)

	assert.Equal(t, "dQw4w9WgXcQ", YouTubeID("https://youtu.be/dQw4w9WgXcQ?t=10"))
	assert.Equal(t, "dQw4w9WgXcQ", YouTubeID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=x"))
	assert.Equal(t, "", YouTubeID("https://vimeo.com/1"))

	assert.Equal(t, "0a1b2c", RutubeID("https://rutube.ru/video/0a1b2c/"))
	assert.Equal(t, "", RutubeID("https://rutube.ru/channel/1/"))
}
