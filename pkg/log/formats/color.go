package formats

import (
	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/mgutz/ansi"
)

var levelStyles = map[log.Level]string{
	log.ErrorLevel: "red",
	log.WarnLevel:  "yellow",
	log.InfoLevel:  "green",
	log.DebugLevel: "blue+h",
	log.TraceLevel: "white",
}

// ColorFunc colorizes a string.
type ColorFunc func(string) string

func noColor(s string) string { return s }

// LevelColorFunc returns the colorizer for the given level.
func LevelColorFunc(level log.Level) ColorFunc {
	if style, ok := levelStyles[level]; ok {
		return ansi.ColorFunc(style)
	}

	return noColor
}
