package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// GormWriter forwards GORM's logger output to zerolog at warn level.
type GormWriter struct {
	Log zerolog.Logger
}

// Printf satisfies gorm.io/gorm/logger.Writer.
func (w GormWriter) Printf(format string, args ...any) {
	w.Log.Warn().Str("component", "gorm").Msg(fmt.Sprintf(format, args...))
}
