// Package hashutil provides content hashing used for copy idempotence
// checks during deployment.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/arthur-debert/dotsetup/pkg/types"
)

// HashBytes returns the hex sha256 of data
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FilesEqual reports whether both files exist and have identical content.
// Any read error counts as "not equal" so callers fall through to the
// deploy path, which surfaces the real error.
func FilesEqual(fs types.FS, a, b string) bool {
	dataA, err := fs.ReadFile(a)
	if err != nil {
		return false
	}
	dataB, err := fs.ReadFile(b)
	if err != nil {
		return false
	}
	return HashBytes(dataA) == HashBytes(dataB)
}
