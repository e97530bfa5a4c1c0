package qti

import "strings"

const (
	xmlFence = "```xml"
	fence    = "```"
)

// Sanitize strips one optional Markdown code fence wrapping raw provider
// output. At most one opener ("```xml" or "```") is removed from the start
// and one closer ("```") from the end; fences inside the body are left alone.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, xmlFence) {
		s = s[len(xmlFence):]
	} else if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
	}
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}
