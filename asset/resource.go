package asset

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// The Resource type wraps a streamable local file or remote asset.
type Resource struct {
	io.ReadCloser

	// Local file path; empty for remote resources.
	path string

	// Remote location; nil for local files.
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	if r.url != nil {
		return r.url.String()
	}
	return r.path
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url != nil
}

// Read the remaining contents of the resource into memory. Wavefront assets
// are always parsed from a fully buffered copy of their contents.
func (r *Resource) ReadAll() ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "resource: could not read '%s'", r.Path())
	}
	return data, nil
}

// Returns true if pathToResource should be fetched over the network.
func isURL(pathToResource string) bool {
	lower := strings.ToLower(pathToResource)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Convert a file name as written in an asset (which may use either slash
// style) into a native path.
func nativePath(name string) string {
	return filepath.FromSlash(strings.Replace(name, `\`, `/`, -1))
}

// Create a new Resource data stream. Only names starting with http:// or
// https:// are treated as URLs; anything else is a file path. If relTo is
// specified and pathToResource is relative, the new Resource is resolved
// against the directory of relTo. This is how material libraries get located
// next to the obj file that references them.
//
// The caller must make sure to close the returned Resource to prevent leaks.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	switch {
	case isURL(pathToResource):
		loc, err := url.Parse(pathToResource)
		if err != nil {
			return nil, errors.Wrapf(err, "resource: invalid url '%s'", pathToResource)
		}
		return fetch(loc)
	case strings.Contains(pathToResource, "://"):
		return nil, errors.Errorf("resource: unsupported scheme '%s'", pathToResource[:strings.Index(pathToResource, "://")])
	case relTo != nil && relTo.IsRemote():
		// Relative names of remote assets resolve against the parent URL;
		// the name is set as a raw path so that '%' and '#' are kept.
		ref := &url.URL{Path: strings.Replace(pathToResource, `\`, `/`, -1)}
		return fetch(relTo.url.ResolveReference(ref))
	}

	path := nativePath(pathToResource)
	if relTo != nil && !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(relTo.path), path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &Resource{
		ReadCloser: f,
		path:       path,
	}, nil
}

func fetch(loc *url.URL) (*Resource, error) {
	resp, err := http.Get(loc.String())
	if err != nil {
		return nil, errors.Wrapf(err, "resource: could not fetch '%s'", loc.String())
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, errors.Errorf("resource: could not fetch '%s': status %d", loc.String(), resp.StatusCode)
	}

	return &Resource{
		ReadCloser: resp.Body,
		url:        loc,
	}, nil
}

// Create a resource from a reader. Relative resources are resolved against
// the directory part of name.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	return &Resource{
		ReadCloser: io.NopCloser(source),
		path:       name,
	}
}
