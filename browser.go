package htmlqr

import (
	"fmt"
	"os/exec"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable. The binary is
// stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("htmlqr: downloading browser: %w", err)
	}
	return path, nil
}

// browserNames are the executables chromedp looks for in PATH.
var browserNames = []string{
	"chromium-browser", "chromium", "google-chrome",
	"google-chrome-stable", "chrome",
}

func browserInPath() bool {
	for _, name := range browserNames {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// browserPath picks the executable for cfg. An empty result lets
// chromedp search the standard locations.
func (c verifierConfig) browserPath() (string, error) {
	if c.chromePath != "" || !c.autoDownload || browserInPath() {
		return c.chromePath, nil
	}
	return resolveBrowser()
}
