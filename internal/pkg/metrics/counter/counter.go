package counter

import (
	"fmt"

	"gorm.io/gorm"
)

// Column names of the monotonic counters
const (
	ColumnViews     = "views"
	ColumnDownloads = "downloads"
)

// Increment atomically adds one to column of the row identified by id and
// returns the new value. The increment happens inside the database
// (col = col + 1), so concurrent callers never overwrite each other.
// gorm.ErrRecordNotFound is returned if no row matches.
func Increment(db *gorm.DB, model interface{}, column string, id uint) (int64, error) {
	if column != ColumnViews && column != ColumnDownloads {
		return 0, fmt.Errorf("unsupported counter column %q", column)
	}

	var value int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(model).
			Where("id = ?", id).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(model).Where("id = ?", id).Select(column).Scan(&value).Error
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}
