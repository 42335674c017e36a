package ui

import (
	"fmt"

	"github.com/idilsaglam/daylist/internal/page"
)

const maxLabel = 80

// Stats counts checked-off and pending items.
func Stats(items []page.Item) (done, pending int) {
	for _, it := range items {
		if it.Checked() {
			done++
		} else {
			pending++
		}
	}
	return
}

// Header is the title line with live counts.
func Header(items []page.Item) string {
	t := Current()
	d, p := Stats(items)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Tasks"),
		C(t.Success, t.SymDone), d,
		C(t.Pending, t.SymPending), p,
		C(t.Accent, "Total"), len(items),
	)
}

// ItemLine renders one checkbox + label row.
func ItemLine(it page.Item) string {
	t := Current()
	box, boxColor, label := t.BoxUnchecked, t.Muted, truncate(it.Label)
	if it.Checked() {
		box, boxColor = t.BoxChecked, t.Success
		label = C(t.CheckedOff, label)
	}
	return fmt.Sprintf("%s %s %s", C(t.Muted, fmt.Sprintf("%-6s", it.ID)), C(boxColor, box), label)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxLabel {
		return string(r[:maxLabel-3]) + "..."
	}
	return s
}

func itemLines(items []page.Item) []string {
	if len(items) == 0 {
		return []string{C(Current().Muted, "no tasks")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, ItemLine(it))
	}
	return out
}

func groupLines(items []page.Item) []string {
	var pend, done []page.Item
	for _, it := range items {
		if it.Checked() {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	t := Current()
	var lines []string
	lines = append(lines, C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, itemLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, itemLines(done)...)
	}
	return lines
}

// PageLines lays out a whole document: greetings first, then the task list
// with a header and progress bar.
func PageLines(doc *page.Document, group bool) []string {
	t := Current()
	items := doc.Items()
	var lines []string
	for _, p := range doc.Paragraphs() {
		lines = append(lines, C(t.Title, p))
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	d, p := Stats(items)
	lines = append(lines, Header(items))
	lines = append(lines, C(t.Muted, ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, itemLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, C(t.Muted, "Tip: add with `daylist add \"Buy milk\"`"))
	return lines
}
