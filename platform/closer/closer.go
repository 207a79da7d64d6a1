package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFn struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFn
	logger Logger
}

var global = &closer{}

func SetLogger(l Logger) {
	global.mu.Lock()
	global.logger = l
	global.mu.Unlock()
}

func Add(fn func(ctx context.Context) error) { AddNamed("", fn) }

func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	global.funcs = append(global.funcs, namedFn{name: name, fn: fn})
	global.mu.Unlock()
}

// CloseAll runs registered functions in reverse order of registration. It is safe to
// call more than once; only the first call does any work.
func CloseAll(ctx context.Context) error {
	var result error
	global.once.Do(func() {
		global.mu.Lock()
		funcs := global.funcs
		global.funcs = nil
		log := global.logger
		global.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := f.fn(ctx); err != nil {
				if log != nil {
					log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
				}
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			if log != nil {
				log.Info(ctx, "closed", zap.String("name", f.name))
			}
		}
		result = errors.Join(errs...)
	})

	return result
}
