package image

import (
	"context"
	"io"

	basecfg "github.com/Wiiktor22/expo/image/config"
	"github.com/Wiiktor22/expo/log"
)

// progressReader wraps the source reader of one fetch, feeds the probe,
// and drives the emitter's progress and partial-load signals as bytes
// arrive. Progress is reported in steps of at least cfg.ProgressMinStep,
// plus a final report at ratio 1.
type progressReader struct {
	logger  log.ILogger
	ctx     context.Context
	src     io.Reader
	emitter *EventEmitter
	probe   *Probe
	cfg     *basecfg.Loader
	total   int64
	loaded  int64
	emitted float64
}

// Init this class
func (me *progressReader) Init(ctx context.Context, src io.Reader, total int64, emitter *EventEmitter, cfg *basecfg.Loader, logger log.ILogger) *progressReader {
	me.logger = logger
	me.ctx = ctx
	me.src = src
	me.total = total
	me.emitter = emitter
	me.probe = NewProbe()
	me.cfg = cfg
	return me
}

// Read reads from the source reader, accounting the received bytes
func (me *progressReader) Read(p []byte) (int, error) {
	if err := me.ctx.Err(); err != nil {
		return 0, err
	}

	n, err := me.src.Read(p)
	if n > 0 {
		me.loaded += int64(n)
		me.probe.Write(p[:n])
		me.report(err == io.EOF)
	}

	return n, err
}

func (me *progressReader) report(eof bool) {
	if me.total <= 0 {
		return
	}

	ratio := float64(me.loaded) / float64(me.total)
	if ratio > 1 {
		ratio = 1
	}

	if ratio == 1 || eof || ratio-me.emitted >= me.cfg.ProgressMinStep {
		me.emitted = ratio
		me.emitter.OnProgress(ratio)
	}

	if me.probe.Progressive() && ratio >= me.cfg.PartialRatio {
		me.emitter.OnPartialLoad()
	}
}

// Format returns the format sniffed so far
func (me *progressReader) Format() string {
	return me.probe.Format()
}
