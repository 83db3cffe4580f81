package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	basecfg "github.com/Wiiktor22/expo/image/config"
	"github.com/Wiiktor22/expo/log"
)

func init() {
	Register(SCHEME_HTTP, HTTPHandler{})
	Register(SCHEME_HTTPS, HTTPHandler{})
}

// HTTPHandler opens image sources over http and https
type HTTPHandler struct {
	logger log.ILogger
	cfg    *basecfg.Loader
	client *http.Client
}

// Init this class
func (me *HTTPHandler) Init(cfg *basecfg.Loader, logger log.ILogger, factory log.ILoggerFactory) IHandler {
	me.cfg = cfg
	me.logger = logger
	me.client = &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	}
	return me
}

// Open issues a GET request for the source. The returned total is the
// Content-Length, or -1 when the server does not announce one. Client
// errors are permanent, server errors are left retryable.
func (me *HTTPHandler) Open(ctx context.Context, src *Source) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URI, nil)
	if err != nil {
		return nil, 0, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "image/*")

	res, err := me.client.Do(req)
	if err != nil {
		return nil, 0, err
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		err = fmt.Errorf("unexpected status: %s", res.Status)
		me.logger.Warnf("Failed to open %s: %v", src.URI, err)
		if res.StatusCode >= 400 && res.StatusCode < 500 {
			return nil, 0, backoff.Permanent(err)
		}
		return nil, 0, err
	}

	return res.Body, res.ContentLength, nil
}
