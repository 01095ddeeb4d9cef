package utils

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	ugcPolicy  = bluemonday.UGCPolicy()
	textPolicy = bluemonday.StrictPolicy()
)

func init() {
	ugcPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	ugcPolicy.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown converts moderator-entered markdown into sanitized HTML,
// used for notification message bodies. Falls back to the stripped source
// on a parse failure.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return textPolicy.Sanitize(source)
	}
	return string(ugcPolicy.SanitizeBytes(buf.Bytes()))
}

// SanitizeText strips all markup from user-supplied free text (report
// details, warning reasons) before it is stored.
func SanitizeText(s string) string {
	return textPolicy.Sanitize(s)
}
