// Package diag renders a *perror.ParseError as a human-readable,
// optionally coloured block with a caret under the offending token —
// adapted from the teacher's internal/errors package (CompilerError.Format
// in CWBudde-go-dws), which did the same against a full source string and
// a lexer.Position. A ParseError only ever carries its captured token
// window rather than the complete source, so the source line here is
// reconstructed from that window instead of re-reading the input, and the
// caret column is derived from the first captured token's trivia length
// rather than a tracked column counter.
package diag

import (
	"fmt"
	"strings"

	"github.com/goidl/webidl/internal/perror"
)

// Format renders e as an "Error at line N" header followed by the
// teacher's "line | source\n      ^\nmessage" shape. color adds ANSI bold/red codes around the caret and message,
// matching the teacher's terminal-output mode.
func Format(e *perror.ParseError, color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Error at line %d\n", e.Line)

	line, lineNo, column := sourceLineAndColumn(e)
	if line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", lineNo)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// sourceLineAndColumn reconstructs the single line of source text the
// first captured token's value falls on (stopping at the next embedded
// newline), that line's 1-based number, and the 1-based column the
// token's value starts at.
func sourceLineAndColumn(e *perror.ParseError) (line string, lineNo, column int) {
	if len(e.Tokens) == 0 {
		return "", 0, 0
	}

	var full strings.Builder
	for _, t := range e.Tokens {
		full.WriteString(t.Text())
	}
	text := full.String()

	lineNo = e.Line
	firstTrivia := e.Tokens[0].Trivia
	if nl := strings.LastIndexByte(firstTrivia, '\n'); nl >= 0 {
		column = len(firstTrivia) - nl
		text = text[nl+1:]
		lineNo += strings.Count(firstTrivia, "\n")
	} else {
		column = len(firstTrivia) + 1
	}

	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[:nl]
	}
	return text, lineNo, column
}
