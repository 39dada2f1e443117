package entity

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator returns a new node id on each call.
type IDGenerator func() NodeID

// NewUUIDGenerator returns a generator of random UUID-based ids.
func NewUUIDGenerator() IDGenerator {
	return func() NodeID {
		return NodeID(uuid.NewString())
	}
}

// NewSequentialIDGenerator returns ids prefix1, prefix2, ... Useful where
// stable ids matter, such as tests and fixtures.
func NewSequentialIDGenerator(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() NodeID {
		return NodeID(fmt.Sprintf("%s%d", prefix, n.Add(1)))
	}
}
