package tapec

import (
	"fmt"
	"strings"

	"github.com/LyricLy/tapec/ascii"
)

// formatToken classifies a stretch of the pretty-printed program for
// theming.
type formatToken int

const (
	formatTokenNone formatToken = iota
	formatTokenRun
	formatTokenComment
)

// formatFunc renders one piece of text tagged with its formatToken.
// PrettyString and HighlightPrettyString share the printing logic below
// and differ only in which formatFunc they pass in.
type formatFunc func(text string, tok formatToken) string

var asmTheme = map[formatToken]string{
	formatTokenNone:    ascii.Reset,
	formatTokenRun:     ascii.DefaultTheme.Operator,
	formatTokenComment: ascii.DefaultTheme.Comment,
}

func formatPlain(text string, _ formatToken) string { return text }

func formatThemed(text string, tok formatToken) string {
	return asmTheme[tok] + text + asmTheme[formatTokenNone]
}

// PrettyString renders program as runs of identical instructions grouped
// with a repeat-count comment, e.g. "+++++ ;; x5", for readability over
// the raw character-by-character output.
func PrettyString(program string) string {
	return prettyString(program, formatPlain)
}

// HighlightPrettyString is PrettyString with ANSI highlighting applied via
// the ascii package's default theme.
func HighlightPrettyString(program string) string {
	return prettyString(program, formatThemed)
}

func prettyString(program string, format formatFunc) string {
	var b strings.Builder
	i := 0
	for i < len(program) {
		j := i + 1
		for j < len(program) && program[j] == program[i] {
			j++
		}
		run := program[i:j]
		b.WriteString(format(run, formatTokenRun))
		if count := j - i; count > 3 {
			b.WriteString(format(fmt.Sprintf(" ;; x%d", count), formatTokenComment))
		}
		b.WriteString("\n")
		i = j
	}
	return b.String()
}
