package feed

import "time"

// Config holds configuration for feed reconciliation and snapshots.
type Config struct {
	// PageSize is the number of event rows fetched per store page.
	PageSize int `mapstructure:"page_size" default:"1000"`
	// CacheTTLMinutes is how long a reconciled feed is reused before being
	// rebuilt. Zero disables the cache.
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes" default:"10"`
	// SnapshotPrefix is the object storage prefix for exported feeds.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"feeds"`
	// SnapshotCron schedules automatic exports of the previous day's feeds
	// (standard cron expression). Empty disables scheduled exports.
	SnapshotCron string `mapstructure:"snapshot_cron" default:""`
	// SnapshotKeep is how many snapshots to retain per service; older ones
	// are pruned after each export. Non-positive keeps everything.
	SnapshotKeep int `mapstructure:"snapshot_keep" default:"30"`
}

// CacheTTL returns the cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
