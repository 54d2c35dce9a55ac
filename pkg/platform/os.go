package platform

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgulich/dotfile-manager/pkg/logging"
	"github.com/subosito/gotenv"
)

// GOOS values for runtime.GOOS comparisons.
const (
	Darwin  = "darwin"
	Linux   = "linux"
	Windows = "windows"
)

// OS identifiers used in project configs.
const (
	MacOS  = "macos"
	Ubuntu = "ubuntu"
	// GenericLinux is used when the distribution cannot be determined.
	GenericLinux = "linux"
)

// osReleasePaths are read in order; see os-release(5).
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Detect returns the identifier of the running operating system.
func Detect() string {
	return detectFrom(runtime.GOOS, openOSRelease)
}

// detectFrom performs detection using the provided GOOS value and os-release
// opener, so it can be exercised for every platform.
func detectFrom(goos string, openRelease func() (io.ReadCloser, error)) string {
	logger := logging.GetLogger("platform")

	switch goos {
	case Darwin:
		return MacOS
	case Linux:
		id := linuxDistribution(openRelease)
		if id == "" {
			logger.Debug().Msg("Could not determine Linux distribution, using generic identifier")
			return GenericLinux
		}
		return id
	default:
		return goos
	}
}

func linuxDistribution(openRelease func() (io.ReadCloser, error)) string {
	r, err := openRelease()
	if err != nil {
		return ""
	}
	defer func() { _ = r.Close() }()

	return ParseOSReleaseID(r)
}

// ParseOSReleaseID extracts the lower-cased ID field of an os-release file.
func ParseOSReleaseID(r io.Reader) string {
	env := gotenv.Parse(r)
	return strings.ToLower(strings.TrimSpace(env["ID"]))
}

func openOSRelease() (io.ReadCloser, error) {
	var lastErr error
	for _, path := range osReleasePaths {
		f, err := os.Open(path)
		if err == nil {
			return f, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
