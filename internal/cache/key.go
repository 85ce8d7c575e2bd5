package cache

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Key derives the cache identity for a (url, selector) pair. The NUL
// separator keeps "a:b"+"" and "a"+":b" from colliding. An absent
// selector is passed as "" and yields the same key as an empty one.
func Key(url, selector string) string {
	hash := blake3.Sum256([]byte(url + "\x00" + selector))
	return hex.EncodeToString(hash[:])
}
