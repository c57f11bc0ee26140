package utils

import (
	"fmt"
	"net"
	"strconv"
)

const (
	defaultHost = "127.0.0.1"
	// DefaultWebPort is the port the rospo web api listens on by default
	DefaultWebPort = 8090
)

// Endpoint holds a host:port pair. It is both the forwarding
// destination of a pipe and the address of the rospo web api
type Endpoint struct {
	Host string
	Port int
}

// NewEndpoint builds an Endpoint object. Missing host defaults to 127.0.0.1
// and missing port to DefaultWebPort
func NewEndpoint(s string) (*Endpoint, error) {
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		// error could be "missing port in address" so try again appending the default port
		host, port, err = net.SplitHostPort(net.JoinHostPort(s, strconv.Itoa(DefaultWebPort)))
		if err != nil {
			return nil, err
		}
	}

	e := &Endpoint{
		Host: defaultHost,
		Port: DefaultWebPort,
	}
	if host != "" {
		e.Host = host
	}
	if port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", port, err)
		}
		if p < 0 || p > 65535 {
			return nil, fmt.Errorf("port out of range: %d", p)
		}
		e.Port = p
	}
	return e, nil
}

// String returns the string representation of the endpoint
func (endpoint *Endpoint) String() string {
	return net.JoinHostPort(endpoint.Host, strconv.Itoa(endpoint.Port))
}
