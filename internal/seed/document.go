package seed

import "strings"

// Fixed names of the files a generator writes.
const (
	StateFile       = "0.xml"
	PopulationsFile = "initial_populations.txt"
)

// element is one child of the environment block.
type element struct {
	tag   string
	value string
}

// stateDocument renders the iteration-zero XML document. Values are
// interpolated verbatim, without escaping.
func stateDocument(env []element) string {
	var b strings.Builder
	b.WriteString("<states>\n")
	b.WriteString("<itno>0</itno>\n")
	b.WriteString("<environment>\n")
	for _, e := range env {
		b.WriteString("<" + e.tag + ">" + e.value + "</" + e.tag + ">\n")
	}
	b.WriteString("</environment>\n")
	b.WriteString("</states>")
	return b.String()
}

// populationLine joins counts with single spaces, without a trailing newline.
func populationLine(counts ...string) string {
	return strings.Join(counts, " ")
}
