package edne

import "iter"

// Collection is a mapping from entity identifier to record. Inserting a
// duplicate identifier silently replaces the earlier record. A built
// collection is safe for concurrent reads.
type Collection[K comparable, R any] struct {
	m map[K]R
}

func newCollection[K comparable, R any](capacity int) *Collection[K, R] {
	return &Collection[K, R]{m: make(map[K]R, capacity)}
}

// Insert adds a record under its identifier, replacing any earlier
// record with the same identifier.
func (c *Collection[K, R]) Insert(key K, rec R) {
	c.m[key] = rec
}

// Get returns the record for an identifier.
func (c *Collection[K, R]) Get(key K) (R, bool) {
	rec, ok := c.m[key]
	return rec, ok
}

// Len returns the number of records.
func (c *Collection[K, R]) Len() int {
	return len(c.m)
}

// IsEmpty reports whether the collection holds no records.
func (c *Collection[K, R]) IsEmpty() bool {
	return len(c.m) == 0
}

// All iterates over every record in unspecified order.
func (c *Collection[K, R]) All() iter.Seq2[K, R] {
	return func(yield func(K, R) bool) {
		for k, r := range c.m {
			if !yield(k, r) {
				return
			}
		}
	}
}

// The six entity collections, one per eDNE record kind.
type (
	Localities       = Collection[LocalityID, Locality]
	Neighborhoods    = Collection[NeighborhoodID, Neighborhood]
	Addresses        = Collection[AddressID, Address]
	BigUsers         = Collection[BigUserID, BigUser]
	OperationalUnits = Collection[OperationalUnitID, OperationalUnit]
	CPCs             = Collection[CPCID, CPC]
)
