package ipfsapi

import (
	"github.com/gauss-project/ipfsclient/pkg/ipfs"
)

// Wire shapes of the daemon responses. They are data-transfer contracts
// owned by the daemon; field names follow its JSON casing.

// AddResponse describes the identifier stored by an add operation.
type AddResponse struct {
	Name string           `json:"Name"`
	Hash ipfs.ContentHash `json:"Hash"`
	Size string           `json:"Size"`
}

type resolveResponse struct {
	Path string `json:"Path"`
}

// LsLink is a single link of a listed object.
type LsLink struct {
	Name string           `json:"Name"`
	Hash ipfs.ContentHash `json:"Hash"`
	Size uint64           `json:"Size"`
	Type int              `json:"Type"`
}

// LsObject is a listed object with its links.
type LsObject struct {
	Hash  string   `json:"Hash"`
	Links []LsLink `json:"Links"`
}

// LsResponse is the listing of one or more objects.
type LsResponse struct {
	Objects []LsObject `json:"Objects"`
}

// ObjectLink is a single link of a patched object.
type ObjectLink struct {
	Name string           `json:"Name"`
	Hash ipfs.ContentHash `json:"Hash"`
	Size uint64           `json:"Size"`
}

// ObjectResponse describes the object produced by a patch operation.
type ObjectResponse struct {
	Hash  ipfs.ContentHash `json:"Hash"`
	Links []ObjectLink     `json:"Links"`
}

// Key is a single named key of the daemon keystore.
type Key struct {
	Name string `json:"Name"`
	ID   string `json:"Id"`
}

// KeyListResponse is the listing of the daemon keystore.
type KeyListResponse struct {
	Keys []Key `json:"Keys"`
}
