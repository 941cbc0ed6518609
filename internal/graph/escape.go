package graph

import "strings"

var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeAttr escapes xml reserved characters for use inside attribute value.
func EscapeAttr(s string) string {
	return attrReplacer.Replace(s)
}
