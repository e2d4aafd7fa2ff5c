// Package htmlsanitize prepares user-submitted text for inclusion in HTML
// email bodies. Contact form fields are plain text, but they are rendered
// inside HTML notification emails, so any markup a submitter sneaks in has
// to be stripped before it reaches a mail client.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy strips all HTML. User text has no legitimate markup.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Sanitize removes every HTML element and attribute from the input,
// returning only the text content.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}

// TextToHTML converts user text to minimal HTML by stripping any embedded
// markup and converting newlines to <br> tags. The strict policy already
// entity-escapes the remaining text, so the result is safe to render
// without further escaping.
func TextToHTML(text string) template.HTML {
	if text == "" {
		return ""
	}
	safe := strings.ReplaceAll(Sanitize(text), "\n", "<br>")
	return template.HTML(safe)
}
