// Package checksum computes the digests attached to served assets.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/zeebo/blake3"
)

// Digest holds the digests of one asset.
type Digest struct {
	// BLAKE3 is the hex BLAKE3-256 digest, used for ETags.
	BLAKE3 string
	// SHA256 is the hex SHA-256 digest, published so visitors can verify downloads.
	SHA256 string
	Size   int64
}

// ETag returns a strong entity tag derived from the BLAKE3 digest.
func (d Digest) ETag() string {
	if d.BLAKE3 == "" {
		return ""
	}
	return `"` + d.BLAKE3[:32] + `"`
}

// Sum computes the digests of data.
func Sum(data []byte) Digest {
	b := blake3.Sum256(data)
	s := sha256.Sum256(data)
	return Digest{
		BLAKE3: hex.EncodeToString(b[:]),
		SHA256: hex.EncodeToString(s[:]),
		Size:   int64(len(data)),
	}
}

// Reader computes the digests of everything read from r.
func Reader(r io.Reader) (Digest, error) {
	b := blake3.New()
	s := sha256.New()
	n, err := io.Copy(io.MultiWriter(b, s), r)
	if err != nil {
		return Digest{}, errors.Wrap(err, "hash stream")
	}
	return Digest{
		BLAKE3: hex.EncodeToString(b.Sum(nil)),
		SHA256: hex.EncodeToString(s.Sum(nil)),
		Size:   n,
	}, nil
}

// File computes the digests of the file at path.
func File(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return Reader(f)
}

// Matches reports whether an If-None-Match header value matches etag.
func Matches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" || etag == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == etag || candidate == "W/"+etag {
			return true
		}
	}
	return false
}
