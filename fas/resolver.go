package fas

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Ergonomic interface for account lookup, by IRC nickname or email address.
//
// Implementations map an identity to the canonical account username.
// Credentials are supplied per call and never retained.
//
// Some example implementations of this interface could be:
//   - direct remote search on every call
//   - local in-memory caching layer to reduce network hits
//   - client for a shared network cache (eg, Redis)
type Resolver interface {
	ResolveNickname(ctx context.Context, nickname string, creds Credentials) (string, error)
	ResolveEmail(ctx context.Context, email string, creds Credentials) (string, error)
}

// Indicates that the account search completed successfully, but matched no
// account.
var ErrNoMatch = errors.New("no account matches the search")

// Indicates that the account search matched more than one account, so no
// single username can be returned.
var ErrAmbiguousMatch = errors.New("search matched multiple accounts")

var DefaultBaseURL = "https://admin.fedoraproject.org/accounts/"

// Returns a reasonable Resolver implementation for applications
func DefaultResolver() Resolver {
	client := NewAccountClient()
	client.HTTPClient = http.Client{
		Timeout: time.Second * 10,
		Transport: &http.Transport{
			IdleConnTimeout: time.Millisecond * 1000,
			MaxIdleConns:    100,
			DialContext: (&net.Dialer{
				Timeout: time.Second * 3,
			}).DialContext,
		},
	}
	return NewCachedResolver(client, NewMemCache())
}
