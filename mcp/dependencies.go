package mcp

import (
	"github.com/davidepi/bincc/domain"
	"github.com/davidepi/bincc/internal/config"
	"github.com/davidepi/bincc/service"
)

// Dependencies aggregates the shared configuration and progress manager
// every handler needs, grounded on mcp/dependencies.go's Dependencies
// struct (simplified: this domain has one config, not a per-analysis
// request builder).
type Dependencies struct {
	config *config.Config
	pm     domain.ProgressManager
}

// NewDependencies constructs the dependency set, defaulting to built-in
// config when cfg is nil (matching NewDependencies in the teacher).
func NewDependencies(cfg *config.Config) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Dependencies{config: cfg, pm: service.NewProgressManager()}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config { return d.config }
