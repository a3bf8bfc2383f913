package pathfs

import (
	"log/slog"

	platformerrors "github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/host"
)

// FS performs path, file, stream and directory operations against a host.
// It is safe for concurrent use if the host is.
type FS struct {
	host   host.Host
	logger *slog.Logger
}

// Option configures an FS.
type Option func(*FS)

// WithLogger sets the logger for mapped failures and swallowed close errors.
// Failures are logged at debug level. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(f *FS) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates an FS that delegates to h.
func New(h host.Host, opts ...Option) *FS {
	f := &FS{
		host:   h,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Host returns the underlying host.
func (f *FS) Host() host.Host {
	return f.host
}

// resolve converts p to host bytes. A NUL byte is reported as a host
// failure so it flows through the mapper like any other.
func resolve(op string, p fspath.Path) ([]byte, error) {
	b, err := p.Bytes()
	if err != nil {
		return nil, host.NewError(op, nil, err)
	}
	return b, nil
}

// failed logs a mapped error and returns it unchanged.
func (f *FS) failed(err error) error {
	if err == nil {
		return nil
	}
	var pe platformerrors.PlatformError
	if !platformerrors.As(err, &pe) {
		f.logger.Debug("filesystem operation failed", "error", err)
		return err
	}
	ctx := pe.Context()
	f.logger.Debug("filesystem operation failed",
		slog.Any("op", ctx["op"]),
		slog.Any("path", ctx["path"]),
		slog.Any("tag", ctx["tag"]),
		slog.Any("kind", ctx["kind"]),
		slog.String("code", string(pe.Code())),
	)
	return err
}
