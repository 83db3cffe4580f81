package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/cenkalti/backoff/v4"

	basecfg "github.com/Wiiktor22/expo/image/config"
	"github.com/Wiiktor22/expo/log"
)

func init() {
	Register(SCHEME_DATA, DataHandler{})
}

// DataHandler opens inline data URI sources
type DataHandler struct {
	logger log.ILogger
	cfg    *basecfg.Loader
}

// Init this class
func (me *DataHandler) Init(cfg *basecfg.Loader, logger log.ILogger, factory log.ILoggerFactory) IHandler {
	me.cfg = cfg
	me.logger = logger
	return me
}

// Open decodes the data URI payload. The uri takes the form
// data:[mediatype][;base64],<payload>.
func (me *DataHandler) Open(ctx context.Context, src *Source) (io.ReadCloser, int64, error) {
	i := strings.IndexByte(src.URL.Opaque, ',')
	if i < 0 {
		return nil, 0, backoff.Permanent(fmt.Errorf("malformed data uri: %s", src.URI))
	}

	meta := src.URL.Opaque[:i]
	payload := src.URL.Opaque[i+1:]

	var (
		b   []byte
		err error
	)

	if strings.HasSuffix(meta, ";base64") {
		b, err = base64.StdEncoding.DecodeString(payload)
	} else {
		var s string
		s, err = url.QueryUnescape(payload)
		b = []byte(s)
	}
	if err != nil {
		return nil, 0, backoff.Permanent(err)
	}

	return io.NopCloser(bytes.NewReader(b)), int64(len(b)), nil
}
