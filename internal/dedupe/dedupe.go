package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent read-side work. Using a centralized singleflight.Group
// ensures that only one query runs for a given key while other callers
// wait for the result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates leaderboard queries keyed by the
// requested limit (e.g. "leaderboard:10").
var LeaderboardGroup singleflight.Group

// CombatRecordGroup deduplicates combat-record lookups keyed by record
// ID (e.g. "record:42"). Records are immutable once written, so shared
// results are always current.
var CombatRecordGroup singleflight.Group
