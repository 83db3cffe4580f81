// Package image provides the event surface of an image view and the
// loading pipeline which drives it through a load attempt.
package image

import (
	"context"
	"io"

	basecfg "github.com/Wiiktor22/expo/image/config"
	"github.com/Wiiktor22/expo/log"
	"github.com/Wiiktor22/expo/utils"
)

// Source schemes
const (
	SCHEME_HTTP  = "http"
	SCHEME_HTTPS = "https"
	SCHEME_FILE  = "file"
	SCHEME_DATA  = "data"
)

var (
	r = utils.NewRegister()
)

// IHandler defines methods to open an image source for reading
type IHandler interface {
	Init(cfg *basecfg.Loader, logger log.ILogger, factory log.ILoggerFactory) IHandler
	Open(ctx context.Context, src *Source) (io.ReadCloser, int64, error)
}

// Register an IHandler with the given scheme
func Register(scheme string, handler interface{}) {
	r.Add(scheme, handler)
}

// NewHandler creates a registered IHandler by the scheme
func NewHandler(scheme string, cfg *basecfg.Loader, factory log.ILoggerFactory) IHandler {
	if h := r.New(scheme); h != nil {
		return h.(IHandler).Init(cfg, factory.NewLogger("image-"+scheme), factory)
	}

	return nil
}
