// Package store provides collection access methods for all Vitrine
// entities. Each store struct wraps a storage.Collection and exposes typed
// CRUD methods. A per-store mutex serializes the read-modify-write cycle
// so two concurrent mutations cannot overwrite each other's changes.
package store

// nextID returns the id for a new record: one more than the highest id
// already present, or 1 for an empty collection. Ids are never reused in
// a way that collides with a live record, though deleting the highest
// record does free its id for the next insert.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
