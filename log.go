package scout

import (
	"os"

	"github.com/rs/zerolog"
)

// logger reports degrade-gracefully conditions: a missing exchange rate, an
// unpriced holding, an unknown period key. The computation itself carries on
// with the documented fallback, the log is for callers who care about
// precision.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetLogger replaces the package logger, e.g. to route warnings through the
// application's console writer or to silence them in tests.
func SetLogger(l zerolog.Logger) { logger = l }
