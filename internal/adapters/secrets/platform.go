// Package secrets picks the token store backing for the running platform.
package secrets

import (
	"fmt"
	"strings"

	"github.com/bnema/coach-cli/internal/adapters/secrets/chain"
	"github.com/bnema/coach-cli/internal/adapters/secrets/local"
	"github.com/bnema/coach-cli/internal/ports"
)

type Platform string

const (
	// PlatformNative keeps the session in the password store, with a private file fallback.
	PlatformNative Platform = "native"
	// PlatformWeb keeps it in a plain key-value file, like browser local storage.
	PlatformWeb Platform = "web"
)

func ParsePlatform(raw string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PlatformNative:
		return PlatformNative, nil
	case PlatformWeb:
		return PlatformWeb, nil
	default:
		return "", fmt.Errorf("unknown platform %q (want native or web)", raw)
	}
}

type Paths struct {
	SecretsDir string
	WebPath    string
}

func NewStore(platform Platform, paths Paths) (ports.SecretStore, error) {
	switch platform {
	case PlatformWeb:
		store, err := local.NewStore(paths.WebPath)
		if err != nil {
			return nil, fmt.Errorf("open local storage: %w", err)
		}
		return store, nil
	case PlatformNative:
		store, err := chain.NewPassFirstWithFileFallback(paths.SecretsDir)
		if err != nil {
			return nil, fmt.Errorf("open secret store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}
