package people

import (
	"encoding/hex"
	"hash"

	"github.com/spaolacci/murmur3"
	"github.com/ugorji/go/codec"
)

var canonicalJSON = newCanonicalHandle()

func newCanonicalHandle() *codec.JsonHandle {
	handle := &codec.JsonHandle{}
	handle.Canonical = true
	return handle
}

// ETag returns a quoted entity tag for s. Equal stats always give the same tag.
func ETag(s Stats) (string, error) {
	return etag(s)
}

// ReportETag returns a quoted entity tag covering a whole ranked report,
// order included.
func ReportETag(ranked []Stats) (string, error) {
	return etag(ranked)
}

func etag(v interface{}) (string, error) {
	var h hash.Hash = murmur3.New128()
	if err := codec.NewEncoder(h, canonicalJSON).Encode(v); err != nil {
		return "", err
	}
	return `"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
