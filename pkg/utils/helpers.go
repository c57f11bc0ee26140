package utils

import (
	"fmt"
	"net/url"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandUserHome resolve paths like "~/.rospo/pipes.yaml"
func ExpandUserHome(path string) (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	ret := path

	if strings.HasPrefix(path, "~/") {
		ret = filepath.Join(usr.HomeDir, path[2:])
	}
	return ret, nil
}

// ParseWebURL builds the rospo web api base url. It accepts full urls
// like "https://host:8090/prefix" as well as bare endpoints like ":8090"
// or "host", in which case the http scheme is assumed
func ParseWebURL(s string) (*url.URL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty web api address")
	}

	if !strings.Contains(s, "://") {
		e, err := NewEndpoint(s)
		if err != nil {
			return nil, fmt.Errorf("invalid web api address %q: %w", s, err)
		}
		return &url.URL{Scheme: "http", Host: e.String()}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid web api address %q: %w", s, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", s)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// JoinURLPath appends p to the base url path
func JoinURLPath(base *url.URL, p string) string {
	u := *base
	u.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(p, "/")
	return u.String()
}
