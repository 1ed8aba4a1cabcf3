package tabwrite

import (
	"log"
	"os"
)

// InitLogging configures the standard logger for CLI use. The library only
// logs deprecation notices and opt-in progress lines.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
