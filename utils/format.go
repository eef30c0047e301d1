package utils

import (
	"fmt"
	"io"
	"time"
)

// MessageType classifies a line of generator output.
type MessageType int

// Kinds of output: plain text, a written icon, a failure and the backend in use.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI escape sequences for each message type.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// DecorateText wraps s in the escape sequence of its message type and resets the color afterwards.
func DecorateText(s string, msgType MessageType) string {
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}

// Printer writes the CLI messages, colored only when Color is set.
type Printer struct {
	w     io.Writer
	Color bool
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, Color: color}
}

// Decorate colors s according to the message type, if colors are enabled.
func (p *Printer) Decorate(s string, msgType MessageType) string {
	if !p.Color {
		return s
	}
	return DecorateText(s, msgType)
}

// Printf formats according to a format specifier and writes to the underlying writer.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	secs := (d % time.Minute).Seconds()
	if d < time.Hour {
		return fmt.Sprintf("%dm %.2fs", int64(d/time.Minute), secs)
	}
	mins := int64((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm %.2fs", int64(d/time.Hour), mins, secs)
}
