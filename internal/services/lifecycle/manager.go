// Package lifecycle ties the process lifetime to OS termination signals and
// winds registered components down within a bounded timeout.
package lifecycle

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// StopFunc shuts one component down. It must respect ctx's deadline.
type StopFunc func(ctx context.Context) error

type namedStop struct {
	name string
	stop StopFunc
}

// Manager cancels the application context on SIGTERM or SIGINT and runs the
// registered stop functions, most recently registered first.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	stops []namedStop
}

func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{timeout: timeout, logger: logger}
}

// Notify returns a context that ends when parent ends or a termination
// signal arrives. The returned cancel releases the signal watch.
func (m *Manager) Notify(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-ctx.Done()
		m.logger.Info("shutdown requested")
		stop()
	}()
	return ctx, stop
}

// OnStop registers a component to wind down during Shutdown.
func (m *Manager) OnStop(name string, stop StopFunc) {
	if stop == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops = append(m.stops, namedStop{name: name, stop: stop})
}

// Shutdown stops components in reverse registration order within the
// configured timeout. All stop functions run; their errors are joined.
func (m *Manager) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	m.mu.Lock()
	defer m.mu.Unlock()

	var result error
	for i := len(m.stops) - 1; i >= 0; i-- {
		s := m.stops[i]
		if err := s.stop(ctx); err != nil {
			m.logger.Error("stop failed", zap.String("component", s.name), zap.Error(err))
			result = errors.Join(result, err)
			continue
		}
		m.logger.Info("stopped", zap.String("component", s.name))
	}
	return result
}
