// Package booking implements the directory's query, search, and mutation
// operations on top of the store. Handlers call into this package and render
// whatever outcome it reports; no gorm types leak past it.
package booking

import (
	"go.uber.org/zap"

	"github.com/brettvs/showbill/internal/store"
)

type Service struct {
	store  *store.Store
	logger *zap.Logger
}

func New(st *store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}
