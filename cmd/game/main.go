// Command climb runs the arm-climbing platformer.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/younwookim/climb/internal/observability"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		reportError(os.Stderr, err)
	}
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// reportError logs a failed command, or prints it to w when the failure
// happened before the logger was set up.
func reportError(w io.Writer, err error) {
	if observability.Initialized() {
		observability.GetLogger().Error("Command failed", zap.Error(err))
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
