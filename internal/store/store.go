// Package store selects where the task list snapshot is kept between runs.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/idilsaglam/daylist/internal/model"
	"github.com/idilsaglam/daylist/internal/store/jsonstore"
	"github.com/idilsaglam/daylist/internal/store/sqlitestore"
)

// Store loads and saves a snapshot.
type Store interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
	Close() error
}

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Open returns the store for driver. An empty path picks the driver's
// default file name in the working directory.
func Open(driver, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverJSON:
		return jsonstore.New(path)
	case DriverSQLite:
		if path == "" {
			path = sqlitestore.DefaultFileName
		}
		return sqlitestore.Open(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
