package eventstore

import (
	"gorm.io/gorm"

	"github.com/alexgpeppe/io-functions-services/core/database"
)

// requiredColumns are the columns the feed queries rely on.
var requiredColumns = []string{"partition_key", "row_key", "user_id"}

// VerifySchema checks that the subscription_events table exposes the columns
// the feed queries rely on and returns the names of any missing ones. A
// non-nil error means the table could not be inspected at all.
func VerifySchema(db *gorm.DB) ([]string, error) {
	columns, err := database.GetTableColumns(db, UserEvent{}.TableName())
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col.Field] = true
	}

	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
