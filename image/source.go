package image

import (
	"fmt"
	"net/url"
	"strings"
)

// Source locates one image resource
type Source struct {
	URI    string
	Scheme string
	URL    *url.URL
}

// Init this class
func (me *Source) Init(uri string, u *url.URL) *Source {
	me.URI = uri
	me.Scheme = strings.ToLower(u.Scheme)
	me.URL = u
	return me
}

// String returns a string containing all the properties of the Source object
func (me *Source) String() string {
	return fmt.Sprintf("[Source scheme=%s uri=%s]", me.Scheme, me.URI)
}

// ParseSource parses the given uri into a Source
func ParseSource(uri string) (*Source, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}

	if u.Scheme == "" {
		return nil, fmt.Errorf("missing scheme in source: %s", uri)
	}

	return new(Source).Init(uri, u), nil
}
