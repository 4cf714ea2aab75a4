// Package ids classifies and normalizes the local-fragment URIs InkML uses
// for intra-document references ("#foo").
package ids

// IsLocal reports whether uri names a same-document fragment: it has more
// than one character and starts with '#'.
func IsLocal(uri string) bool {
	return len(uri) > 1 && uri[0] == '#'
}

// ToLocal strips a leading '#' from a local uri; non-local input is
// returned unchanged.
func ToLocal(uri string) string {
	if IsLocal(uri) {
		return uri[1:]
	}
	return uri
}

// ToOptionalLocal strips a leading '#' from a local uri, reporting ok=false
// when uri is not local.
func ToOptionalLocal(uri string) (id string, ok bool) {
	if IsLocal(uri) {
		return uri[1:], true
	}
	return "", false
}
