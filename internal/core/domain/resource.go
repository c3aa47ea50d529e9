package domain

import (
	"net/url"
	"strings"
)

// Resource addresses one document of the build service API.
type Resource struct {
	// Path holds the unescaped path segments below the API root.
	Path []string
	// Query holds optional query parameters.
	Query url.Values
}

// NewResource returns a resource for the given path segments.
func NewResource(segments ...string) Resource {
	return Resource{Path: segments}
}

// With returns a copy of r with the query parameter key set to value.
func (r Resource) With(key, value string) Resource {
	q := url.Values{}
	for k, v := range r.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set(key, value)
	return Resource{Path: r.Path, Query: q}
}

// String returns the escaped relative URL of r. Query keys are sorted, so two
// resources naming the same document render identically.
func (r Resource) String() string {
	escaped := make([]string, len(r.Path))
	for i, s := range r.Path {
		escaped[i] = url.PathEscape(s)
	}
	s := "/" + strings.Join(escaped, "/")
	if len(r.Query) > 0 {
		s += "?" + r.Query.Encode()
	}
	return s
}

// ConnectOptions select the build service instance and the access mode of a run.
type ConnectOptions struct {
	APIURL string
	// CacheRequests memoizes reads for the lifetime of the process.
	CacheRequests bool
	// DryRun replaces writes and deletes with log output.
	DryRun bool
}
