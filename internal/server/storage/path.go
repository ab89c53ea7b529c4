package storage

import (
	"net/url"
	"strings"
)

// ResolveObjectPath extracts the object path inside bucket from a public
// object URL such as
//
//	https://host/storage/v1/object/public/<bucket>/<path>
//
// It reports false when the URL does not parse, does not reference the
// bucket, or names no object.
func ResolveObjectPath(publicURL, bucket string) (string, bool) {
	if publicURL == "" || bucket == "" {
		return "", false
	}

	u, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}

	// url.Parse already percent-decodes Path.
	marker := "/" + bucket + "/"
	i := strings.Index(u.Path, marker)
	if i < 0 {
		return "", false
	}

	path := strings.TrimLeft(u.Path[i+len(marker):], "/")
	if path == "" {
		return "", false
	}
	return path, true
}
