package services

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

const DefaultExcerptLength = 160

var (
	imageRe     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	markPunctRe = regexp.MustCompile("[*_#>`~|]+")
)

// Excerpter turns the rich-text HTML body of a post into a short plain-text summary
type Excerpter struct {
	converter *md.Converter
	length    int
}

func NewExcerpter(length int) *Excerpter {
	if length < 1 {
		length = DefaultExcerptLength
	}
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Excerpter{converter: converter, length: length}
}

// Excerpt returns at most length runes of visible text, with an ellipsis when cut
func (e *Excerpter) Excerpt(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	markdown, err := e.converter.ConvertString(html)
	if err != nil {
		return ""
	}

	text := imageRe.ReplaceAllString(markdown, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = markPunctRe.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= e.length {
		return text
	}
	return strings.TrimSpace(string(runes[:e.length])) + "…"
}
