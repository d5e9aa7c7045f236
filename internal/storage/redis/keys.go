package redis

import "fmt"

// collectionKey returns the Redis key of the HASH holding a collection's documents, keyed by id
func collectionKey(prefix, collection string) string {
	return fmt.Sprintf("%s:%s", prefix, collection)
}
