package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realty-catalog/internal/usecase"
)

func TestNormalizeVideoURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"youtu.be with query", "https://youtu.be/AbCdEf?t=10", "https://www.youtube.com/embed/AbCdEf"},
		{"watch with list", "https://www.youtube.com/watch?v=AbCdEf&list=PL", "https://www.youtube.com/embed/AbCdEf"},
		{"iframe rutube", `<iframe src="https://rutube.ru/play/embed/deadbeef/"></iframe>`, "https://rutube.ru/play/embed/deadbeef/"},
		{"iframe single quotes", `<iframe width='560' src='https://youtu.be/Xy'></iframe>`, "https://www.youtube.com/embed/Xy"},
		{"iframe without src", `<iframe></iframe>`, `<iframe></iframe>`},
		{"rutube video page", "https://rutube.ru/video/deadbeef/", "https://rutube.ru/play/embed/deadbeef/"},
		{"rutube embed unchanged", "https://rutube.ru/play/embed/abc123", "https://rutube.ru/play/embed/abc123"},
		{"unknown passes through", "https://vimeo.com/42", "https://vimeo.com/42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.NormalizeVideoURL(tt.in))
		})
	}
}

func TestNormalizeVideoURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://youtu.be/AbCdEf?t=10",
		"https://www.youtube.com/watch?v=AbCdEf&list=PL",
		`<iframe src="https://rutube.ru/play/embed/deadbeef/"></iframe>`,
		"https://rutube.ru/video/deadbeef/",
		"https://www.youtube.com/embed/AbCdEf",
		"https://example.com/video.mp4",
	}

	for _, in := range inputs {
		once := usecase.NormalizeVideoURL(in)
		assert.Equal(t, once, usecase.NormalizeVideoURL(once), in)
	}
}
