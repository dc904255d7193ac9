package app

import (
	"errors"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
)

// Components holds the wired application and the resources it owns.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config

	closers []func() error
}

// NewComponents creates Components releasing the given resources on Close.
func NewComponents(a *App, log ports.Logger, cfg *domain.Config, closers ...func() error) *Components {
	return &Components{App: a, Logger: log, Config: cfg, closers: closers}
}

// Close releases every resource in reverse order of acquisition.
func (c *Components) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
