package pgsql

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// ensurePool reports an error when the repository was built without a pool.
func (r *BaseRepository) ensurePool(name string) error {
	if r.Pool == nil {
		return fmt.Errorf("%s repository not initialized", name)
	}
	return nil
}

// pageBounds normalises page/pageSize into LIMIT/OFFSET values.
// A pageSize <= 0 means no limit.
func pageBounds(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}
