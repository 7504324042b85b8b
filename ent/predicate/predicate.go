// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Build is the predicate function for build builders.
type Build func(*sql.Selector)

// BuildOperation is the predicate function for buildoperation builders.
type BuildOperation func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// QueueState is the predicate function for queuestate builders.
type QueueState func(*sql.Selector)

// RateLimitState is the predicate function for ratelimitstate builders.
type RateLimitState func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)

// Version is the predicate function for version builders.
type Version func(*sql.Selector)
