package sim

import (
	"log"
)

// LogHookBase provides the logger shared by hooks that write to a log.
type LogHookBase struct {
	*log.Logger
}
