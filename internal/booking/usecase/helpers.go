package usecase

import (
	"sync"
	"time"
)

// bucketLocks serializes conflict checks per calendar day. The overlap check
// is read-then-write; without serialization two concurrent creates targeting
// the same window could both pass it. A coarse per-day advisory lock is
// enough because a session's interval lives within one day.
type bucketLocks struct {
	mu      sync.Mutex
	buckets map[string]*sync.Mutex
}

func newBucketLocks() *bucketLocks {
	return &bucketLocks{buckets: make(map[string]*sync.Mutex)}
}

// acquire locks the bucket for t's calendar day and returns the unlock func.
func (b *bucketLocks) acquire(t time.Time) func() {
	key := t.Format("2006-01-02")

	b.mu.Lock()
	bucket, ok := b.buckets[key]
	if !ok {
		bucket = &sync.Mutex{}
		b.buckets[key] = bucket
	}
	b.mu.Unlock()

	bucket.Lock()
	return bucket.Unlock
}
