package contracts

import (
	"context"
	"fmt"
)

// CacheTag groups query cache entries that must be dropped together, normally a
// resource inside one patient.
type CacheTag struct {
	Resource string
	Scope    string
}

func (t CacheTag) String() string {
	return fmt.Sprintf("%s:%s", t.Resource, t.Scope)
}

type QueryCache interface {
	// Get decodes the cached payload into dest and reports whether the key was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, tags ...CacheTag) error
	// Evict drops every entry registered under the tags and returns how many keys went.
	Evict(ctx context.Context, tags ...CacheTag) (int, error)
}
