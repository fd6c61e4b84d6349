package objstore

import "strings"

// URLResolver joins stored object keys with the store's public base URL.
// Rows persist bare keys so the serving domain can change without a data
// migration.
type URLResolver struct {
	base string
}

// NewURLResolver constructs a resolver for the given public base URL.
func NewURLResolver(base string) URLResolver {
	return URLResolver{base: strings.TrimRight(base, "/")}
}

// Resolve returns the public URL for key. Keys that already carry a scheme
// are returned unchanged.
func (r URLResolver) Resolve(key string) string {
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	return r.base + "/" + strings.TrimLeft(key, "/")
}
