// Package paste injects the paste keystroke into the focused application.
package paste

import (
	"fmt"
	"runtime"

	"github.com/go-vgo/robotgo"
)

// Injector performs the synchronous paste keystroke sequence:
// modifier down, tap v, modifier up.
type Injector interface {
	Paste() error
}

// Robotgo injects keystrokes via go-vgo/robotgo.
type Robotgo struct{}

// Paste holds the platform paste modifier, taps v, and releases it.
func (Robotgo) Paste() error {
	mod := "ctrl"
	if runtime.GOOS == "darwin" {
		mod = "cmd"
	}
	if err := robotgo.KeyToggle(mod, "down"); err != nil {
		return fmt.Errorf("modifier down: %w", err)
	}
	if err := robotgo.KeyTap("v"); err != nil {
		_ = robotgo.KeyToggle(mod, "up")
		return fmt.Errorf("key tap: %w", err)
	}
	if err := robotgo.KeyToggle(mod, "up"); err != nil {
		return fmt.Errorf("modifier up: %w", err)
	}
	return nil
}
