package image

import (
	"bytes"
	"context"
	"fmt"
	stdimage "image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Wiiktor22/expo/events"
	ErrorEvent "github.com/Wiiktor22/expo/events/errorevent"
	TimerEvent "github.com/Wiiktor22/expo/events/timerevent"
	basecfg "github.com/Wiiktor22/expo/image/config"
	"github.com/Wiiktor22/expo/log"
	"github.com/Wiiktor22/expo/utils/timer"
)

// Asset is the decoded result of a successful load attempt
type Asset struct {
	Source *Source
	Image  stdimage.Image
	Config stdimage.Config
	Format string
	Bytes  int64
}

// Loader is the image loading subsystem. It drives the emitter of a view
// through one load attempt: every OnLoadStart it issues is followed by
// exactly one OnLoadEnd, whether the attempt succeeds, fails, times out or
// is canceled. The loader itself dispatches an ErrorEvent for each failed
// attempt, for diagnostics.
type Loader struct {
	events.EventDispatcher

	logger   log.ILogger
	factory  log.ILoggerFactory
	cfg      *basecfg.Loader
	cache    *Cache
	mtx      sync.RWMutex
	handlers map[string]IHandler
}

// Init this class
func (me *Loader) Init(cfg *basecfg.Loader, logger log.ILogger, factory log.ILoggerFactory) *Loader {
	me.EventDispatcher.Init(logger)
	me.logger = logger
	me.factory = factory
	me.cfg = cfg
	me.handlers = make(map[string]IHandler)

	if cfg.Cache.Enable {
		me.cache = NewCache(&cfg.Cache, factory.NewLogger("image-cache"))
	}

	return me
}

// WithHandler is a chainable configuration function which overrides the
// registered handler for a scheme
func (me *Loader) WithHandler(scheme string, h IHandler) *Loader {
	me.mtx.Lock()
	defer me.mtx.Unlock()

	me.handlers[scheme] = h
	return me
}

// Cache returns the asset cache, or nil when disabled
func (me *Loader) Cache() *Cache {
	return me.cache
}

func (me *Loader) handler(scheme string) IHandler {
	me.mtx.RLock()
	h := me.handlers[scheme]
	me.mtx.RUnlock()

	if h != nil {
		return h
	}

	return NewHandler(scheme, me.cfg, me.factory)
}

// Load runs one load attempt for the view, emitting the lifecycle events
// on its emitter, and returns the decoded asset
func (me *Loader) Load(ctx context.Context, view *View) (*Asset, error) {
	src := view.Source()
	emitter := view.Emitter()

	emitter.OnLoadStart()

	if me.cache != nil {
		if asset, err := me.cache.Get(ctx, src.URI); err == nil {
			me.logger.Debugf(3, "Cache hit: %s", src.URI)
			view.setAsset(asset)
			emitter.OnProgress(1)
			emitter.OnLoad()
			emitter.OnLoadEnd()
			return asset, nil
		}
	}

	h := me.handler(src.Scheme)
	if h == nil {
		return nil, me.fail(view, fmt.Errorf("no handler registered for scheme: %s", src.Scheme))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Deadline watchdog over the whole attempt, retries included.
	if me.cfg.Timeout > 0 {
		watchdog := timer.New(time.Duration(me.cfg.Timeout)*time.Second, 1, me.logger)
		watchdog.AddEventListener(TimerEvent.TIMER, events.NewListener(func(e *TimerEvent.TimerEvent) {
			me.logger.Warnf("Load attempt timed out: %s", src.URI)
			cancel()
		}, 1))
		watchdog.Start()
		defer watchdog.Stop()
	}

	var (
		data   []byte
		format string
	)

	operation := func() error {
		rc, total, err := h.Open(ctx, src)
		if err != nil {
			return err
		}
		defer rc.Close()

		pr := new(progressReader).Init(ctx, rc, total, emitter, me.cfg, me.logger)
		data, err = io.ReadAll(pr)
		if err != nil {
			return err
		}

		format = pr.Format()
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(me.cfg.MaxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, me.fail(view, err)
	}

	asset, err := me.decode(src, data, format)
	if err != nil {
		return nil, me.fail(view, err)
	}

	if me.cache != nil {
		me.cache.Set(ctx, src.URI, asset)
	}

	view.setAsset(asset)
	emitter.OnProgress(1)
	emitter.OnLoad()
	emitter.OnLoadEnd()

	return asset, nil
}

func (me *Loader) decode(src *Source, data []byte, sniffed string) (*Asset, error) {
	cfg, _, err := stdimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode header of %s: %w", src.URI, err)
	}

	img, format, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", src.URI, err)
	}

	if sniffed != FORMAT_UNKNOWN && sniffed != format {
		me.logger.Debugf(3, "Sniffed format differs: %s != %s", sniffed, format)
	}

	return &Asset{
		Source: src,
		Image:  img,
		Config: cfg,
		Format: format,
		Bytes:  int64(len(data)),
	}, nil
}

// fail terminates the attempt on the emitter and reports the error
func (me *Loader) fail(view *View, err error) error {
	me.logger.Errorf("Failed to load %s: %v", view.Source().URI, err)
	me.DispatchEvent(ErrorEvent.New(ErrorEvent.ERROR, me, "LoadError", err))

	emitter := view.Emitter()
	emitter.OnError()
	emitter.OnLoadEnd()

	return err
}

// NewLoader creates a Loader with the given config
func NewLoader(cfg *basecfg.Loader, factory log.ILoggerFactory) *Loader {
	return new(Loader).Init(cfg, factory.NewLogger("image-loader"), factory)
}
