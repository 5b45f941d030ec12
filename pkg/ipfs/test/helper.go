package test

import (
	"encoding/hex"
	"math/rand"

	"github.com/gauss-project/ipfsclient/pkg/ipfs"
)

// RandomHexDigest generates a hex-encoded digest of the required length.
func RandomHexDigest() string {
	b := make([]byte, ipfs.DigestSize)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RandomContentHash generates a random valid content hash.
func RandomContentHash() ipfs.ContentHash {
	return ipfs.MustParseHexDigest(RandomHexDigest())
}
