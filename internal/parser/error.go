package parser

import (
	"fmt"

	"github.com/goidl/webidl/internal/perror"
)

// errorf raises a *perror.ParseError for the current cursor position,
// prefixing the message with the name of the definition under
// construction (if any) to aid diagnostics — per spec.md §4.3, "Error
// messages reference the nearest 'current' definition, if any".
func (p *Parser) errorf(code, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.current != "" {
		msg = fmt.Sprintf("%s: %s", p.current, msg)
	}
	return perror.New(msg, code, p.cur.line, p.cur.upcoming(5))
}
