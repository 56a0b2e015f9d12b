package factory

import (
	"fmt"
	"os"
	"strings"

	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/dkovacevic/newsdata-sync/internal/storage/es"
	"github.com/dkovacevic/newsdata-sync/internal/storage/pg"
	"github.com/dkovacevic/newsdata-sync/pkg/stringsutil"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

const defaultESIndex = "articles"

// LoadEnv reads the storage backend selection and its connection settings
// from the environment. STORAGE_TYPE defaults to pg.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.PG
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.PG:
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		cfg.Pg = &pg.PoolConfig{ConnStr: connStr}

	case storage.ES:
		addresses := stringsutil.RemoveEmptyStrings(
			stringsutil.TrimAll(strings.Split(os.Getenv("ES_ADDRESSES"), ",")),
		)
		if len(addresses) == 0 {
			return nil, fmt.Errorf("ES_ADDRESSES environment variable is not set")
		}

		indexName := os.Getenv("ES_INDEX")
		if indexName == "" {
			indexName = defaultESIndex
		}

		cfg.Es = &es.ClientConfig{
			Addresses: addresses,
			IndexName: indexName,
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}

	case storage.InMem:
		// nothing to configure

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), storageType)
	}

	return cfg, nil
}
