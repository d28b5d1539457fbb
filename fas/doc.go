/*
Package fas resolves IRC nicknames and email addresses to Fedora Account System usernames.

The two main abstractions are a Client interface for the remote account-system search API, and a CachedResolver which memoizes lookups in a pluggable Cache. One search response answers both lookup directions: resolving a nickname also warms the cache entry for that account's email address, and vice versa, so the sibling lookup is served without a second round trip.
*/
package fas
