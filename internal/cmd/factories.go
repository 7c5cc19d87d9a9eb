package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/renato0307/termdock/internal/adapters/boltorder"
	"github.com/renato0307/termdock/internal/adapters/broadcast"
	adapterstorage "github.com/renato0307/termdock/internal/adapters/storage"
	"github.com/renato0307/termdock/internal/config"
	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/ports"
	"github.com/renato0307/termdock/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	FilterService  *services.SessionFilterService
	ListService    *services.SessionListService
	OrderService   *services.ManualOrderService
	SessionService *services.SessionService

	// VisibleOrder holds the order resolved by the last list
	VisibleOrder *broadcast.Board

	// Internal - for cleanup only
	closers     []io.Closer
	sessionRepo ports.SessionRepository
}

// NewContainer creates a new Container with all dependencies wired.
// orderBackend selects where manual orders live: the session database or a bolt file.
func NewContainer(ctx context.Context, orderBackend string) (*Container, error) {
	sessionRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}
	c := &Container{sessionRepo: sessionRepo}

	var orderStore ports.ManualOrderStore = sessionRepo
	if orderBackend == config.OrderBackendBolt {
		boltStore, err := boltorder.Open(config.GetOrderDBPath())
		if err != nil {
			_ = sessionRepo.Close()
			return nil, err
		}
		c.closers = append(c.closers, boltStore)
		orderStore = boltStore
	}
	logging.Logger.Debug("Manual order backend selected", "backend", orderBackendName(orderBackend))

	orderService, err := services.NewManualOrderService(ctx, orderStore)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize manual order: %w", err)
	}

	board := broadcast.NewBoard()
	filterService := services.NewSessionFilterService()

	c.FilterService = filterService
	c.ListService = services.NewSessionListService(sessionRepo, sessionRepo, orderService, filterService, board)
	c.OrderService = orderService
	c.SessionService = services.NewSessionService(sessionRepo, sessionRepo, sessionRepo, sessionRepo, orderService)
	c.VisibleOrder = board
	return c, nil
}

func orderBackendName(backend string) string {
	if backend == "" {
		return config.OrderBackendSQLite
	}
	return backend
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	for _, closer := range c.closers {
		errs = append(errs, closer.Close())
	}
	if c.sessionRepo != nil {
		errs = append(errs, c.sessionRepo.Close())
	}
	return errors.Join(errs...)
}
