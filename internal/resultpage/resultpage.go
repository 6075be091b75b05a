// Package resultpage opens the result page shown at the end of a run.
package resultpage

import (
	_ "embed"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
)

//go:embed res/result.html
var page []byte

// Opener opens a URL in the user's browser.
type Opener func(url string) error

// BrowserOpener opens URLs with the system browser, discarding anything
// the launched process prints.
func BrowserOpener() Opener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL
}

// Page returns the bundled result page.
func Page() []byte {
	return page
}

// Open writes the bundled page below dir, or uses custom when it is not
// empty, and opens it with open. It returns the URL that was opened.
func Open(open Opener, dir, custom string) (string, error) {
	path := custom
	if path == "" {
		var err error
		path, err = write(dir)
		if err != nil {
			return "", err
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("error resolving result page: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("error accessing result page: %w", err)
	}

	u := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	if err := open(u); err != nil {
		return u, fmt.Errorf("error opening result page: %w", err)
	}
	return u, nil
}

func write(dir string) (string, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "bython")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating result page directory: %w", err)
	}
	path := filepath.Join(dir, "result.html")
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("error writing result page: %w", err)
	}
	return path, nil
}
