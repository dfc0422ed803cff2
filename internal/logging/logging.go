// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var colourDisabled bool

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35

	colorBold = 1
)

func colorize(s any, c int) string {
	if colourDisabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// SetLoggerConsole points the global logger at a human readable console
// writer on out. Solver output goes to stdout, so callers normally pass stderr.
func SetLoggerConsole(out io.Writer, noColour bool) {
	colourDisabled = noColour

	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: noColour}
	cw.FormatLevel = consoleFormatLevel
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}
	log.Logger = zerolog.New(cw).With().Timestamp().Logger().Level(log.Logger.GetLevel())
}

// SetLevel changes the minimum level of the global logger.
func SetLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}

// Parse maps a level name ("trace", "debug", "info", "warn", "error") to a
// zerolog level. The empty string means info.
func Parse(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", level)
	}

	return l, nil
}

func consoleFormatLevel(i any) string {
	ll, ok := i.(string)
	if !ok {
		if i == nil {
			return colorize("| ??? |", colorBold)
		}
		return strings.ToUpper(fmt.Sprintf("| %5s |", i))
	}
	switch ll {
	case zerolog.LevelTraceValue:
		return colorize("| TRACE |", colorMagenta)
	case zerolog.LevelDebugValue:
		return colorize("| DEBUG |", colorYellow)
	case zerolog.LevelInfoValue:
		return colorize("| INFO  |", colorGreen)
	case zerolog.LevelWarnValue:
		return colorize("| WARN  |", colorRed)
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return colorize(colorize(fmt.Sprintf("| %-5s |", strings.ToUpper(ll)), colorRed), colorBold)
	default:
		return colorize(ll, colorBold)
	}
}
