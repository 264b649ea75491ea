package invocation

import (
	"path/filepath"

	"github.com/inkwell-app/inkwell-launch/internal/domain"
)

// cacheDir resolves the per-user cache directory for the given OS.
// The platform's home/profile variable is required; its absence is a
// MissingEnvironment failure, not a silent fallback.
func cacheDir(goos string, getenv func(string) string) (string, error) {
	switch goos {
	case "windows":
		if dir := getenv("LocalAppData"); dir != "" {
			return dir, nil
		}
		return "", domain.New(domain.KindMissingEnvironment, "LocalAppData is not set")
	case "darwin":
		home := getenv("HOME")
		if home == "" {
			return "", domain.New(domain.KindMissingEnvironment, "HOME is not set")
		}
		return filepath.Join(home, "Library", "Caches"), nil
	default:
		// Linux and the other Unix-likes follow the XDG convention:
		// explicit XDG_CACHE_HOME wins, otherwise ~/.cache.
		if dir := getenv("XDG_CACHE_HOME"); dir != "" {
			return dir, nil
		}
		home := getenv("HOME")
		if home == "" {
			return "", domain.New(domain.KindMissingEnvironment, "HOME is not set")
		}
		return filepath.Join(home, ".cache"), nil
	}
}
