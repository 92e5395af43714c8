package main

import (
	"context"

	"github.com/ftauth/authcatalog/internal/api"
	"github.com/ftauth/authcatalog/internal/catalog"
	"github.com/ftauth/authcatalog/internal/config"
	"github.com/ftauth/authcatalog/internal/store"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// app is the catalog wired to its asset store.
type app struct {
	log     *zap.Logger
	assets  *store.AssetStore
	catalog *catalog.Catalog
}

// newApp opens and seeds the asset store, making sure the configured
// email icon is present, and builds a catalog that resolves icons from it.
func newApp(ctx context.Context, conf *config.Config, log *zap.Logger) (*app, error) {
	assets, err := store.Open(conf.Assets, log)
	if err != nil {
		return nil, err
	}
	if err := assets.Seed(ctx); err != nil {
		assets.Close()
		return nil, err
	}
	if name := conf.Catalog.EmailIcon; name != "" {
		if err := assets.Ensure(ctx, name); err != nil {
			assets.Close()
			return nil, err
		}
	}

	c := catalog.New(
		assets,
		catalog.WithTint(conf.Catalog.Tint),
		catalog.WithEmailIcon(conf.Catalog.EmailIcon),
	)
	return &app{log: log, assets: assets, catalog: c}, nil
}

// Router returns the API routes for the catalog.
func (a *app) Router(origins []string) *mux.Router {
	r := mux.NewRouter()
	api.SetupRoutes(r, a.catalog, origins, a.log)
	return r
}

// Close closes the asset store.
func (a *app) Close() error {
	a.log.Info("closing asset store")
	return a.assets.Close()
}
