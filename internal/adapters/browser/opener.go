package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/bnema/coach-cli/internal/ports"
)

var ErrUnavailable = errors.New("no browser launcher available")

type startFunc func(ctx context.Context, name string, args ...string) error

// Opener launches the platform URL handler without waiting for the browser to exit.
type Opener struct {
	goos  string
	start startFunc
}

var _ ports.URLOpener = (*Opener)(nil)

func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS, start: startCommand}
}

func (o *Opener) Open(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: scheme must be http or https", rawURL)
	}

	name, args := launcher(o.goos, parsed.String())
	if err := o.start(ctx, name, args...); err != nil {
		return fmt.Errorf("open %q with %s: %w", rawURL, name, err)
	}

	return nil
}

func launcher(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}

func startCommand(_ context.Context, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrUnavailable
		}
		return fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.Command(bin, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() { _ = cmd.Wait() }()
	return nil
}
