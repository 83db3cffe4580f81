package image

import (
	"context"
	"io"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/afero"

	basecfg "github.com/Wiiktor22/expo/image/config"
	"github.com/Wiiktor22/expo/log"
)

func init() {
	Register(SCHEME_FILE, FileHandler{})
}

// FileHandler opens image sources on the local filesystem
type FileHandler struct {
	logger log.ILogger
	cfg    *basecfg.Loader
	fs     afero.Fs
}

// Init this class
func (me *FileHandler) Init(cfg *basecfg.Loader, logger log.ILogger, factory log.ILoggerFactory) IHandler {
	me.cfg = cfg
	me.logger = logger
	me.fs = afero.NewOsFs()
	return me
}

// WithFs is a chainable configuration function which replaces the backing filesystem
func (me *FileHandler) WithFs(fs afero.Fs) *FileHandler {
	me.fs = fs
	return me
}

// Open opens the file at the source path. Filesystem errors are permanent,
// a retry would observe the same state.
func (me *FileHandler) Open(ctx context.Context, src *Source) (io.ReadCloser, int64, error) {
	f, err := me.fs.Open(src.URL.Path)
	if err != nil {
		return nil, 0, backoff.Permanent(err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, backoff.Permanent(err)
	}

	return f, info.Size(), nil
}
