// Package testutils provides shared test helpers.
package testutils

import (
	"go.uber.org/goleak"
)

// VerifyTestMain verifies no goroutines are leaked by tests run within a TestMain.
func VerifyTestMain(m goleak.TestingM) {
	goleak.VerifyTestMain(m)
}
