// Package clip copies command output to the system clipboard.
package clip

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	once    sync.Once
	initErr error
)

// Write places data on the clipboard as text. It fails when no clipboard is
// available, e.g. on a headless machine.
func Write(data []byte) error {
	once.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", initErr)
	}

	clipboard.Write(clipboard.FmtText, data)
	return nil
}
