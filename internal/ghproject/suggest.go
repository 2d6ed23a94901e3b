package ghproject

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// SuggestMarkdown builds the suggestion overview as a markdown document.
func SuggestMarkdown(repo string) string {
	var b strings.Builder
	if repo != "" {
		fmt.Fprintf(&b, "# suggestions for %s\n\n", repo)
	} else {
		b.WriteString("# repository suggestions\n\n")
	}

	b.WriteString("## labels\n\n")
	b.WriteString("| name | color | description |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, l := range Labels {
		fmt.Fprintf(&b, "| %s | `#%s` | %s |\n", l.Name, l.Color, l.Description)
	}

	b.WriteString("\n## starter issues\n\n")
	for _, i := range Issues {
		fmt.Fprintf(&b, "- **%s**: %s\n", i.Title, i.Body)
	}

	b.WriteString("\n## milestones\n\n")
	b.WriteString("| title | description |\n")
	b.WriteString("| --- | --- |\n")
	for _, m := range Milestones {
		fmt.Fprintf(&b, "| %s | %s |\n", m.Title, m.Description)
	}
	return b.String()
}

// RenderSuggestions writes the overview, styled through glamour unless
// plain is set. Rendering trouble falls back to the raw markdown.
func RenderSuggestions(w io.Writer, repo string, plain bool) {
	md := SuggestMarkdown(repo)
	if plain {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
