package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/ftauth/authcatalog/internal/config"
	"github.com/ftauth/authcatalog/pkg/icon"
	"github.com/ftauth/authcatalog/pkg/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an asset is not in the store.
var ErrNotFound = errors.New("asset not found")

// Asset is one entry of the icon asset manifest.
type Asset struct {
	Kind model.IconKind `json:"kind"`
	Name string         `json:"name"`
	Path string         `json:"path,omitempty"` // Relative to the configured base URL
}

// AssetStore holds the icon asset manifest in a Badger backend and
// resolves icon handles against it.
type AssetStore struct {
	InMemory bool
	DB       *badger.DB

	baseURL string
	log     *zap.Logger
}

const prefixAsset = "asset"

func makeAssetKey(kind model.IconKind, name string) []byte {
	return []byte(fmt.Sprintf("%s_%s_%s", prefixAsset, kind, name))
}

func makeKindPrefix(kind model.IconKind) []byte {
	return []byte(fmt.Sprintf("%s_%s_", prefixAsset, kind))
}

// Open opens the asset store described by cfg.
func Open(cfg *config.AssetsConfig, log *zap.Logger) (*AssetStore, error) {
	path := cfg.Dir
	if cfg.InMemory {
		path = ""
	}
	opts := badger.DefaultOptions(path).
		WithInMemory(cfg.InMemory).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening asset store")
	}
	return &AssetStore{
		InMemory: cfg.InMemory,
		DB:       db,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		log:      log,
	}, nil
}

// Close handles closing all connections to the database.
func (s *AssetStore) Close() error {
	return s.DB.Close()
}

// Put adds or replaces an asset.
func (s *AssetStore) Put(ctx context.Context, asset *Asset) error {
	if !asset.Kind.IsValid() {
		return errors.Errorf("invalid asset kind: %q", asset.Kind)
	}
	if asset.Name == "" {
		return errors.New("asset name is required")
	}
	b, err := json.Marshal(asset)
	if err != nil {
		return err
	}
	return s.DB.Update(func(txn *badger.Txn) error {
		return txn.Set(makeAssetKey(asset.Kind, asset.Name), b)
	})
}

// Get retrieves an asset by kind and name.
func (s *AssetStore) Get(ctx context.Context, kind model.IconKind, name string) (*Asset, error) {
	var asset Asset
	err := s.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeAssetKey(kind, name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return errors.Wrapf(ErrNotFound, "%s %q", kind, name)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &asset)
		})
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// List returns every asset of the given kind, ordered by name.
func (s *AssetStore) List(ctx context.Context, kind model.IconKind) ([]*Asset, error) {
	assets := make([]*Asset, 0)
	err := s.DB.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := makeKindPrefix(kind)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var asset Asset
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &asset)
			})
			if err != nil {
				return err
			}
			assets = append(assets, &asset)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *AssetStore) isEmpty() (empty bool) {
	s.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		it.Rewind()
		empty = !it.Valid()

		return nil
	})
	return
}

// Seed writes the default icon manifest if the store is empty.
func (s *AssetStore) Seed(ctx context.Context) error {
	if !s.isEmpty() {
		return nil
	}
	var assets []*Asset
	for _, name := range icon.DefaultAssets {
		assets = append(assets, &Asset{
			Kind: model.IconKindAsset,
			Name: name,
			Path: assetPath(name),
		})
	}
	for _, name := range icon.DefaultSymbols {
		assets = append(assets, &Asset{
			Kind: model.IconKindSymbol,
			Name: name,
			Path: fmt.Sprintf("symbols/%s.svg", name),
		})
	}
	for _, asset := range assets {
		if err := s.Put(ctx, asset); err != nil {
			return errors.Wrapf(err, "seeding %s %q", asset.Kind, asset.Name)
		}
	}
	s.log.Info("seeded asset store", zap.Int("assets", len(assets)))
	return nil
}

// Ensure adds a bundled image asset under name unless one is already stored.
func (s *AssetStore) Ensure(ctx context.Context, name string) error {
	_, err := s.Get(ctx, model.IconKindAsset, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	asset := &Asset{
		Kind: model.IconKindAsset,
		Name: name,
		Path: assetPath(name),
	}
	if err := s.Put(ctx, asset); err != nil {
		return errors.Wrapf(err, "adding asset %q", name)
	}
	s.log.Info("added asset", zap.String("name", name))
	return nil
}

func assetPath(name string) string {
	return fmt.Sprintf("assets/%s.png", name)
}

func (s *AssetStore) url(asset *Asset) string {
	if s.baseURL == "" || asset.Path == "" {
		return asset.Path
	}
	return s.baseURL + "/" + asset.Path
}

func (s *AssetStore) lookup(kind model.IconKind, name string) *Asset {
	asset, err := s.Get(context.Background(), kind, name)
	if err != nil {
		s.log.Debug("icon unavailable",
			zap.String("kind", string(kind)),
			zap.String("name", name),
			zap.Error(err),
		)
		return nil
	}
	return asset
}

// ByName implements icon.Resolver.
func (s *AssetStore) ByName(name string) *model.Icon {
	asset := s.lookup(model.IconKindAsset, name)
	if asset == nil {
		return nil
	}
	return model.NewAssetIcon(name, s.url(asset))
}

// BySymbol implements icon.Resolver.
func (s *AssetStore) BySymbol(name string, tint model.Color) *model.Icon {
	asset := s.lookup(model.IconKindSymbol, name)
	if asset == nil {
		return nil
	}
	return model.NewSymbolIcon(name, tint, s.url(asset))
}

var _ icon.Resolver = (*AssetStore)(nil)
