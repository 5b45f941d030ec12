package ipfs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPathParse is returned for an unrecognized path namespace token or a
// structurally invalid content path.
var ErrPathParse = errors.New("invalid content path")

// PathType enumerates the supported path namespaces.
type PathType int

const (
	// PathTypeIPFS is the identifier-addressed namespace.
	PathTypeIPFS PathType = iota
	// PathTypeIPNS is the name-addressed namespace.
	PathTypeIPNS
)

var pathTypeTokens = map[string]PathType{
	"ipfs": PathTypeIPFS,
	"ipns": PathTypeIPNS,
}

// ParsePathType maps a recognized namespace token to its PathType. The set
// of valid tokens is closed; anything else fails with ErrPathParse.
func ParsePathType(token string) (PathType, error) {
	t, ok := pathTypeTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized namespace %q", ErrPathParse, token)
	}
	return t, nil
}

func (t PathType) String() string {
	switch t {
	case PathTypeIPFS:
		return "ipfs"
	case PathTypeIPNS:
		return "ipns"
	}
	return "unknown"
}

// Path is a structured content path: a namespace and one or more path
// segments. It is immutable after construction and renders back to the
// exact string it was parsed from.
type Path struct {
	pathType PathType
	segments []string
}

// ParsePath combines a caller-supplied prefix with a validated path type.
// The prefix holds the slash-separated path segments; empty segments are
// structurally invalid.
func ParsePath(prefix string, t PathType) (Path, error) {
	if prefix == "" {
		return Path{}, fmt.Errorf("%w: empty prefix", ErrPathParse)
	}
	segments := strings.Split(strings.TrimSuffix(prefix, "/"), "/")
	for _, s := range segments {
		if s == "" {
			return Path{}, fmt.Errorf("%w: empty segment in %q", ErrPathParse, prefix)
		}
	}
	return Path{pathType: t, segments: segments}, nil
}

// ParsePathString parses a rendered content path of the form
// /<namespace>/<segment>[/<segment>...]. It is the inverse of String.
func ParsePathString(s string) (Path, error) {
	if !strings.HasPrefix(s, "/") {
		return Path{}, fmt.Errorf("%w: path %q is not rooted", ErrPathParse, s)
	}
	token, prefix, ok := strings.Cut(s[1:], "/")
	if !ok {
		return Path{}, fmt.Errorf("%w: path %q has no segments", ErrPathParse, s)
	}
	t, err := ParsePathType(token)
	if err != nil {
		return Path{}, err
	}
	return ParsePath(prefix, t)
}

// Type returns the namespace of the path.
func (p Path) Type() PathType {
	return p.pathType
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// String returns the rendered representation of the path.
func (p Path) String() string {
	return "/" + p.pathType.String() + "/" + strings.Join(p.segments, "/")
}

// Equal returns true if two paths are identical.
func (p Path) Equal(o Path) bool {
	if p.pathType != o.pathType || len(p.segments) != len(o.segments) {
		return false
	}
	for i, s := range p.segments {
		if o.segments[i] != s {
			return false
		}
	}
	return true
}
