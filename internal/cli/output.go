package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

const adminTimeout = 10 * time.Second

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
	dimColor   = color.New(color.Faint)
	headColor  = color.New(color.FgCyan)
)

func modeColor(mode string) *color.Color {
	switch mode {
	case "active":
		return okColor
	case "paused":
		return warnColor
	default:
		return errorColor
	}
}

func actionColor(action string) *color.Color {
	switch action {
	case "block":
		return errorColor
	case "warn":
		return warnColor
	default:
		return okColor
	}
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func formatUntil(until *time.Time) string {
	if until == nil {
		return ""
	}
	return " until " + until.Local().Format("15:04 Mon Jan 2")
}
