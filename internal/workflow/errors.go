// /internal/workflow/errors.go
package workflow

import (
	"errors"
	"io/fs"
	"net"
	"net/url"
	"os"

	"forge-launcher/internal/fetch"
	"forge-launcher/internal/installer"
	"forge-launcher/internal/launcher"
	"forge-launcher/internal/versions"
)

// ErrEmptyUsername is returned for a blank or whitespace-only username.
var ErrEmptyUsername = errors.New("username is empty")

// Kind groups step errors by what the player can do about them.
type Kind string

const (
	KindNone       Kind = ""
	KindNetwork    Kind = "network"
	KindSubprocess Kind = "subprocess"
	KindLaunch     Kind = "launch"
	KindValidation Kind = "validation"
	KindFilesystem Kind = "filesystem"
	KindUnknown    Kind = "unknown"
)

// KindOf classifies err. The most specific match wins: an installer exit is a
// subprocess failure even though its output may mention files.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		statusErr  *fetch.StatusError
		urlErr     *url.Error
		netErr     net.Error
		exitErr    *installer.ExitError
		resolveErr *launcher.ResolveError
		startErr   *launcher.StartError
		pathErr    *fs.PathError
		linkErr    *os.LinkError
	)
	switch {
	case errors.Is(err, ErrEmptyUsername):
		return KindValidation
	case errors.As(err, &statusErr), errors.As(err, &urlErr), errors.As(err, &netErr),
		errors.Is(err, fetch.ErrInterrupted):
		return KindNetwork
	case errors.As(err, &exitErr):
		return KindSubprocess
	case errors.As(err, &resolveErr), errors.As(err, &startErr), errors.Is(err, versions.ErrNotInstalled):
		return KindLaunch
	case errors.As(err, &pathErr), errors.As(err, &linkErr):
		return KindFilesystem
	}
	return KindUnknown
}
