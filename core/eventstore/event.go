package eventstore

// UserEvent is one immutable row of the partitioned subscription event
// store. Rows are appended by the upstream subscription workflows and are
// never updated; within a partition they are ordered by RowKey.
type UserEvent struct {
	// PartitionKey groups the events of one day and one stream, e.g.
	// "P-2021-05-01" or "S-2021-05-01-svc-newsletter-S".
	PartitionKey string `gorm:"column:partition_key;primaryKey;size:80"`
	// RowKey is an opaque unique key, lexicographically ordered within
	// the partition.
	RowKey string `gorm:"column:row_key;primaryKey;size:128"`
	// UserID is the pseudonymous identifier of the user the event is about.
	UserID string `gorm:"column:user_id;size:128"`
}

// TableName overrides the GORM default table name.
func (UserEvent) TableName() string {
	return "subscription_events"
}
