package usecase

import (
	"strings"

	"github.com/realty-catalog/internal/pkg/utils"
)

const (
	youtubeEmbedBase = "https://www.youtube.com/embed/"
	rutubeEmbedBase  = "https://rutube.ru/play/embed/"
)

// NormalizeVideoURL приводит ссылку или код iframe к адресу для встраивания.
// Неузнанные формы возвращаются без изменений.
func NormalizeVideoURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}

	if strings.HasPrefix(strings.ToLower(s), "<iframe") {
		src, ok := utils.ExtractIframeSrc(s)
		if !ok {
			return raw
		}
		s = src
	}

	if id := utils.YouTubeID(s); id != "" {
		return youtubeEmbedBase + id
	}

	if strings.Contains(s, "rutube.ru/play/embed/") {
		return s
	}

	if id := utils.RutubeID(s); id != "" {
		return rutubeEmbedBase + id + "/"
	}

	return s
}
