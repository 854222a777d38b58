package reflector

import (
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"beanpath/errors"
)

// Factory hands out Reflectors by type.
type Factory interface {
	IsCacheEnabled() bool
	SetCacheEnabled(enabled bool)
	FindForType(t reflect.Type) (*Reflector, error)
}

// DefaultFactory caches one Reflector per type. Concurrent first lookups of a
// type may introspect it more than once, but all of them return the same
// stored Reflector. Failed introspections are not cached.
type DefaultFactory struct {
	cache    sync.Map // reflect.Type -> *Reflector
	disabled atomic.Bool
	logger   *zap.SugaredLogger
}

// FactoryOption configures a DefaultFactory.
type FactoryOption func(*DefaultFactory)

// WithLogger sets the logger that reports introspections.
func WithLogger(logger *zap.SugaredLogger) FactoryOption {
	return func(f *DefaultFactory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithCacheEnabled sets the initial state of the cache. It is enabled by default.
func WithCacheEnabled(enabled bool) FactoryOption {
	return func(f *DefaultFactory) {
		f.disabled.Store(!enabled)
	}
}

// NewFactory returns a DefaultFactory with caching enabled.
func NewFactory(opts ...FactoryOption) *DefaultFactory {
	f := &DefaultFactory{logger: zap.NewNop().Sugar()}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *DefaultFactory) IsCacheEnabled() bool {
	return !f.disabled.Load()
}

func (f *DefaultFactory) SetCacheEnabled(enabled bool) {
	f.disabled.Store(!enabled)
}

// FindForType returns the Reflector of t, introspecting it on first use.
func (f *DefaultFactory) FindForType(t reflect.Type) (*Reflector, error) {
	if t == nil {
		return nil, errors.Wrap(errors.ErrUnsupportedOperation, "cannot introspect a nil type")
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if !f.IsCacheEnabled() {
		f.logger.Debugw("Introspecting type, cache disabled", "type", t.String())
		return New(t)
	}

	if cached, ok := f.cache.Load(t); ok {
		return cached.(*Reflector), nil
	}

	f.logger.Debugw("Introspecting type", "type", t.String())

	r, err := New(t)
	if err != nil {
		f.logger.Debugw("Introspection failed", "type", t.String(), "error", err)
		return nil, err
	}

	actual, _ := f.cache.LoadOrStore(t, r)

	return actual.(*Reflector), nil
}
