// Package ipfs contains the most basic and general concepts of the client:
// content identifiers and content paths.
package ipfs

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// DigestSize is the length of a raw sha2-256 digest in bytes.
const DigestSize = 32

// ErrHash is returned for malformed or wrong-length content hash input.
var ErrHash = errors.New("invalid content hash")

// ContentHash is a self-describing binary content identifier. It wraps a
// version 0 CID built from a raw sha2-256 digest and is immutable after
// construction; instances are only created through validated parsing.
type ContentHash struct {
	c cid.Cid
}

// ParseHexDigest decodes a hex-encoded sha2-256 digest into a ContentHash.
// The decoded digest must be exactly DigestSize bytes; any other length is
// rejected, never padded or truncated.
func ParseHexDigest(s string) (ContentHash, error) {
	digest, err := hex.DecodeString(s)
	if err != nil {
		return ContentHash{}, fmt.Errorf("%w: %v", ErrHash, err)
	}
	if len(digest) != DigestSize {
		return ContentHash{}, fmt.Errorf("%w: digest length %d, want %d", ErrHash, len(digest), DigestSize)
	}
	sum, err := multihash.Encode(digest, multihash.SHA2_256)
	if err != nil {
		return ContentHash{}, fmt.Errorf("%w: %v", ErrHash, err)
	}
	return ContentHash{c: cid.NewCidV0(sum)}, nil
}

// MustParseHexDigest returns a ContentHash from a hex-encoded digest,
// and panics if there is a parse error.
func MustParseHexDigest(s string) ContentHash {
	h, err := ParseHexDigest(s)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseContentHash decodes the string representation of an identifier,
// as found in daemon JSON fields.
func ParseContentHash(s string) (ContentHash, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return ContentHash{}, fmt.Errorf("%w: %v", ErrHash, err)
	}
	return ContentHash{c: c}, nil
}

// String returns the canonical string representation of the identifier.
func (h ContentHash) String() string {
	if !h.c.Defined() {
		return ""
	}
	return h.c.String()
}

// HexDigest returns the hex encoding of the raw digest carried by the
// identifier, the inverse of ParseHexDigest.
func (h ContentHash) HexDigest() string {
	dm, err := multihash.Decode(h.c.Hash())
	if err != nil {
		return ""
	}
	return hex.EncodeToString(dm.Digest)
}

// Bytes returns the binary representation of the identifier.
func (h ContentHash) Bytes() []byte {
	return h.c.Bytes()
}

// Equal returns true if two identifiers are identical.
func (h ContentHash) Equal(o ContentHash) bool {
	return h.c.Equals(o.c)
}

// IsZero returns true if the ContentHash is not set to any value.
func (h ContentHash) IsZero() bool {
	return !h.c.Defined()
}

// UnmarshalJSON sets ContentHash to a value from JSON-encoded representation.
func (h *ContentHash) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*h, err = ParseContentHash(s)
	return err
}

// MarshalJSON returns JSON-encoded representation of ContentHash.
func (h ContentHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
