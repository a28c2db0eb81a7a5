package whatwgurl

import (
	"errors"
	"fmt"
)

// ErrUnknownProperty is returned by Set for a name that is not a URL
// property.
var ErrUnknownProperty = errors.New("unknown URL property")

// Components holds the value of every URL getter.
type Components struct {
	Href     string `json:"href" yaml:"href"`
	Origin   string `json:"origin" yaml:"origin"`
	Protocol string `json:"protocol" yaml:"protocol"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Host     string `json:"host" yaml:"host"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Port     string `json:"port" yaml:"port"`
	Pathname string `json:"pathname" yaml:"pathname"`
	Search   string `json:"search" yaml:"search"`
	Hash     string `json:"hash" yaml:"hash"`
}

// Components returns the current value of every getter.
func (u *URL) Components() Components {
	return Components{
		Href:     u.Href(),
		Origin:   u.Origin(),
		Protocol: u.Protocol(),
		Username: u.Username(),
		Password: u.Password(),
		Host:     u.Host(),
		Hostname: u.Hostname(),
		Port:     u.Port(),
		Pathname: u.Pathname(),
		Search:   u.Search(),
		Hash:     u.Hash(),
	}
}

// Properties lists the names accepted by Set.
var Properties = []string{
	"href", "protocol", "username", "password", "host", "hostname",
	"port", "pathname", "search", "hash",
}

// Set assigns value to the named property. Only an unknown property or an
// invalid href is reported; the other setters ignore values they cannot
// apply.
func (u *URL) Set(property, value string) error {
	switch property {
	case "href":
		return u.SetHref(value)
	case "protocol":
		u.SetProtocol(value)
	case "username":
		u.SetUsername(value)
	case "password":
		u.SetPassword(value)
	case "host":
		u.SetHost(value)
	case "hostname":
		u.SetHostname(value)
	case "port":
		u.SetPort(value)
	case "pathname":
		u.SetPathname(value)
	case "search":
		u.SetSearch(value)
	case "hash":
		u.SetHash(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	return nil
}
