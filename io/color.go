package snapio

import "github.com/fatih/color"

// Theme holds the colour attributes used for each log level.
type Theme struct {
	Debug   []color.Attribute
	Info    []color.Attribute
	Success []color.Attribute
	Warning []color.Attribute
	Error   []color.Attribute
}

// DefaultTheme returns the standard level colours.
func DefaultTheme() Theme {
	return Theme{
		Debug:   []color.Attribute{color.FgMagenta},
		Info:    []color.Attribute{color.FgBlue},
		Success: []color.Attribute{color.FgGreen},
		Warning: []color.Attribute{color.FgYellow},
		Error:   []color.Attribute{color.FgRed, color.Bold},
	}
}

func (t Theme) forLevel(level LogLevel) []color.Attribute {
	switch level {
	case LevelDebug:
		return t.Debug
	case LevelInfo:
		return t.Info
	case LevelSuccess:
		return t.Success
	case LevelWarning:
		return t.Warning
	case LevelError:
		return t.Error
	default:
		return nil
	}
}

// Colorize renders s with attrs when the manager supports colour; otherwise
// s is returned unchanged.
func (m *IOManager) Colorize(s string, attrs ...color.Attribute) string {
	if len(attrs) == 0 {
		return s
	}
	c := color.New(attrs...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, color.Bold) }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, color.Faint) }
