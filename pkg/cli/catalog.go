package cli

import (
	"github.com/nene/f-matches/pkg/catalog"
)

// loadCatalog loads the configured catalog, or path when it is not empty.
func loadCatalog(path string) (*catalog.Catalog, string, error) {
	if path == "" {
		path = cfg.Patterns
	}
	cat, err := catalog.LoadFromFile(path)
	if err != nil {
		return nil, path, err
	}
	cat.SetLogger(logger)
	logger.Info("catalog loaded", "path", path, "patterns", cat.Len())
	return cat, path, nil
}
