package avatar

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Federated resolves avatar URLs through libravatar DNS federation, so that
// domains can serve their own avatars instead of the central CDN. Each call
// can issue up to two DNS SRV queries, which adds latency compared to the
// pure hash-based functions.
//
// The zero value is usable and queries through the system resolver.
type Federated struct {
	// DNS resolver used for the SRV service-discovery queries. Calling code
	// can use a custom Dialer to query against a specific DNS server.
	Resolver net.Resolver
}

// ResolveEmail returns the avatar URL for an email address, preferring an
// avatar server advertised by the address's domain. When the domain
// advertises no avatar service, the central CDN URL is returned, identical to
// URLForEmail.
func (f *Federated) ResolveEmail(ctx context.Context, email string, size int, style string) (string, error) {
	base, err := f.discover(ctx, emailDomain(email))
	if err != nil {
		return "", err
	}
	digest := md5.Sum([]byte(email))
	return fmt.Sprintf("%s%x?%s", base, digest, renderQuery(size, style)), nil
}

// ResolveOpenID is ResolveEmail for an OpenID identity string, using the
// identity's host for discovery and its SHA-256 digest in the URL.
func (f *Federated) ResolveOpenID(ctx context.Context, openid string, size int, style string) (string, error) {
	base, err := f.discover(ctx, openidHost(openid))
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256([]byte(openid))
	return fmt.Sprintf("%s%x?%s", base, digest, renderQuery(size, style)), nil
}

// discover finds the avatar base URL for a domain, trying the secure SRV
// record before the plain one. A domain with no SRV records, or a failed
// lookup, falls back to the central CDN.
func (f *Federated) discover(ctx context.Context, domain string) (string, error) {
	if domain == "" {
		return cdnURL, nil
	}
	_, addrs, err := f.Resolver.LookupSRV(ctx, "avatars-sec", "tcp", domain)
	if err == nil && len(addrs) > 0 {
		return srvBase("https", addrs[0], 443), nil
	}
	_, addrs, err = f.Resolver.LookupSRV(ctx, "avatars", "tcp", domain)
	if err == nil && len(addrs) > 0 {
		return srvBase("http", addrs[0], 80), nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return cdnURL, nil
}

func srvBase(scheme string, srv *net.SRV, defaultPort uint16) string {
	host := strings.TrimSuffix(srv.Target, ".")
	if srv.Port != 0 && srv.Port != defaultPort {
		host = fmt.Sprintf("%s:%d", host, srv.Port)
	}
	return fmt.Sprintf("%s://%s/avatar/", scheme, host)
}

func emailDomain(email string) string {
	idx := strings.LastIndex(email, "@")
	if idx < 0 {
		return ""
	}
	return email[idx+1:]
}

func openidHost(openid string) string {
	u, err := url.Parse(openid)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
