package fas

import (
	"context"
	"fmt"
	"strings"
)

// CachedResolver memoizes account lookups in a pluggable Cache, and warms the
// sibling lookup's entry from every single-match search response: resolving a
// nickname also stores the match's email-keyed entry, and vice versa.
//
// Concurrent lookups for the same uncached key may each issue a remote
// search; resolution is idempotent, so both populate the entry with the same
// value. There is no single-flight guarantee.
type CachedResolver struct {
	client Client
	cache  Cache
}

var _ Resolver = (*CachedResolver)(nil)

func NewCachedResolver(client Client, cache Cache) *CachedResolver {
	return &CachedResolver{
		client: client,
		cache:  cache,
	}
}

// Reconfigure swaps the cache backend, discarding all existing entries. Must
// not be called with lookups in flight; the caller synchronizes.
func (r *CachedResolver) Reconfigure(cache Cache) {
	r.cache = cache
}

// ResolveNickname returns the account username for an IRC nickname.
//
// Returns ErrNoMatch when no account matches and ErrAmbiguousMatch when more
// than one does. Transport failures from the client propagate unmodified.
// Failed lookups cache nothing under the nickname's key.
func (r *CachedResolver) ResolveNickname(ctx context.Context, nickname string, creds Credentials) (string, error) {
	key := NicknameKey(nickname, creds)
	if name, ok := r.cache.Get(ctx, key); ok {
		nicknameCacheHits.Inc()
		return name, nil
	}
	nicknameCacheMisses.Inc()

	people, err := r.search(ctx, nickname, creds, false)
	if err != nil {
		return "", err
	}
	if len(people) > 1 {
		return "", fmt.Errorf("%w: nickname %q", ErrAmbiguousMatch, nickname)
	}
	name := people[0].Username
	r.cache.Set(ctx, key, name)
	return name, nil
}

// ResolveEmail returns the account username for an email address.
//
// Addresses under fedoraproject.org map straight to their local part, with no
// cache or network access. Error behavior matches ResolveNickname.
func (r *CachedResolver) ResolveEmail(ctx context.Context, email string, creds Credentials) (string, error) {
	if local, ok := strings.CutSuffix(email, "@fedoraproject.org"); ok {
		return local, nil
	}

	key := EmailKey(email, creds)
	if name, ok := r.cache.Get(ctx, key); ok {
		emailCacheHits.Inc()
		return name, nil
	}
	emailCacheMisses.Inc()

	people, err := r.search(ctx, email, creds, true)
	if err != nil {
		return "", err
	}
	if len(people) > 1 {
		return "", fmt.Errorf("%w: email %q", ErrAmbiguousMatch, email)
	}
	name := people[0].Username
	r.cache.Set(ctx, key, name)
	return name, nil
}

// search issues one remote search and warms the sibling lookup direction's
// cache entry from the response, so the sibling identity resolves without a
// second round trip. The response-level username is stored, matching the
// account-system response shape. Returns the raw people list for match-count
// validation by the caller.
func (r *CachedResolver) search(ctx context.Context, term string, creds Credentials, byEmail bool) ([]Person, error) {
	resp, err := r.client.Search(ctx, term, creds, byEmail)
	if err != nil {
		accountSearches.WithLabelValues("error").Inc()
		return nil, err
	}
	if len(resp.People) == 0 {
		accountSearches.WithLabelValues("no_match").Inc()
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, term)
	}
	accountSearches.WithLabelValues("ok").Inc()

	// Only unambiguous results are warmed. A multi-person response fails the
	// lookup, and the searched identity is among the matched records, so
	// warming it would turn every later call for that identity into a cache
	// hit that masks the ambiguity.
	if len(resp.People) == 1 {
		person := resp.People[0]
		if person.Email != "" {
			r.cache.Set(ctx, EmailKey(person.Email, creds), resp.Username)
		}
		if person.IRCNick != "" {
			r.cache.Set(ctx, NicknameKey(person.IRCNick, creds), resp.Username)
		}
	}
	return resp.People, nil
}
