// Package testing switches the binary into test mode when blank-imported by a
// test package.
package testing

import "os"

func init() {
	if os.Getenv("LEAVEDESK_TEST_MODE") == "" {
		_ = os.Setenv("LEAVEDESK_TEST_MODE", "1")
	}
}
