// Package browser launches URLs in the system browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener navigates to a URL in a new browsing context. The dashboard model
// depends on this interface so tests can capture navigation instead of
// spawning a browser.
type Opener interface {
	Open(url string) error
}

// SystemOpener opens URLs with the platform launcher.
type SystemOpener struct{}

func (SystemOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

// CaptureOpener records opened URLs for tests.
type CaptureOpener struct {
	Opened []string
	Err    error
}

func (c *CaptureOpener) Open(url string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Opened = append(c.Opened, url)
	return nil
}
