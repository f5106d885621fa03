package utils

import (
	"regexp"
	"strings"
)

var (
	iframeSrcRe   = regexp.MustCompile(`src=["']([^"']+)["']`)
	rutubeVideoRe = regexp.MustCompile(`rutube\.ru/video/([a-fA-F0-9]+)`)
)

// ExtractIframeSrc достаёт значение атрибута src
func ExtractIframeSrc(code string) (string, bool) {
	m := iframeSrcRe.FindStringSubmatch(code)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// YouTubeID - идентификатор ролика из youtu.be/<id> или watch?v=<id>
func YouTubeID(s string) string {
	if i := strings.Index(s, "youtu.be/"); i >= 0 {
		return cutAny(s[i+len("youtu.be/"):], "?&#/")
	}
	if i := strings.Index(s, "watch?v="); i >= 0 {
		return cutAny(s[i+len("watch?v="):], "&#")
	}
	return ""
}

// RutubeID - hex-идентификатор из rutube.ru/video/<id>
func RutubeID(s string) string {
	if m := rutubeVideoRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func cutAny(s, seps string) string {
	if i := strings.IndexAny(s, seps); i >= 0 {
		return s[:i]
	}
	return s
}
