package report

import (
	"bufio"
	"io"
	"strings"
)

// RenderText writes r as a plain-text block.
func RenderText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(Title + "\n")
	bw.WriteString(strings.Repeat("=", len(Title)) + "\n")
	for _, l := range r.headerLines() {
		bw.WriteString(l + "\n")
	}
	bw.WriteString("\n")

	for _, l := range r.detailLines() {
		bw.WriteString(l + "\n")
	}
	bw.WriteString("\n")
	bw.WriteString(r.resultLine() + "\n")

	return bw.Flush()
}
