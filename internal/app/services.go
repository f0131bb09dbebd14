package app

import (
	"adaptctl/internal/catalog"
	"adaptctl/pkg/adaptation"
	"adaptctl/pkg/logging"
)

// Services holds the adaptation manager built from the loaded catalogs
type Services struct {
	Manager   *adaptation.Manager
	Namespace *catalog.Namespace
}

// InitializeServices builds cat into a fresh manager and installs that
// manager as the global one.
func InitializeServices(cat *catalog.Catalog, syms *catalog.Symbols) (*Services, error) {
	m := adaptation.NewManager()

	ns, err := cat.Build(m, syms)
	if err != nil {
		return nil, err
	}

	adaptation.SetGlobalManager(m)
	logging.Debug("Bootstrap", "Installed manager %s as global manager", m.ID())

	return &Services{
		Manager:   m,
		Namespace: ns,
	}, nil
}
