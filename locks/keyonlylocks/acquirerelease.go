// Package keyonlylocks provides non-blocking locks keyed by string, held as
// entries of a *sync.Map.
package keyonlylocks

import "sync"

// TryAcquire takes every key or none. The returned release func deletes the
// acquired keys; wrap it in a deferred call so it runs even on panic.
func TryAcquire(lockStore *sync.Map, keys ...string) (release func(), ok bool) {
	acquired := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, loaded := lockStore.LoadOrStore(key, struct{}{}); loaded {
			// rollback previously acquired locks
			Release(lockStore, acquired...)
			return nil, false
		}
		acquired = append(acquired, key)
	}
	return func() { Release(lockStore, acquired...) }, true
}

func Release(lockStore *sync.Map, keys ...string) {
	for _, key := range keys {
		lockStore.Delete(key)
	}
}

// Held reports whether key is currently locked
func Held(lockStore *sync.Map, key string) bool {
	_, ok := lockStore.Load(key)
	return ok
}
