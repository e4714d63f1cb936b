package app

import (
	"os"
	"sync"
)

const testModeEnv = "LEAVEDESK_TEST_MODE"

var testMode = sync.OnceValue(func() bool {
	return os.Getenv(testModeEnv) == "1"
})

// InTestMode reports whether the binary should skip runtime startup. The
// environment is read once.
func InTestMode() bool {
	return testMode()
}
