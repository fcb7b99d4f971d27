package hashset

import "github.com/cespare/xxhash/v2"

// IntHash uses the integer itself as its hash
func IntHash(value int) int {
	return value
}

// StringHash hashes a string with xxHash
func StringHash(value string) int {
	return int(xxhash.Sum64String(value))
}
