package figure

import "strings"

// detexer translates the LaTeX notation publication labels commonly
// carry into plain text for the renderer. Longer patterns come first so
// `---` is not consumed as `--` + `-`.
var detexer = strings.NewReplacer(
	`\%`, "%",
	`\&`, "&",
	`\_`, "_",
	`\#`, "#",
	`\$`, "$",
	"---", "—", // em dash
	"--", "–", // en dash
	"~", " ", // non-breaking space
	"$", "",
)

// detex converts LaTeX label notation (e.g. `\%`, `--`) to plain text.
func detex(s string) string {
	return detexer.Replace(s)
}
