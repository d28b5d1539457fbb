/*
Package avatar computes avatar image URLs for Fedora accounts.

URLs are derived deterministically from a username, email address, or OpenID identity by hashing the identity and pointing at the libravatar CDN, with a small static exception list for service accounts. The hash-based functions are pure string transformations and never touch the network; the optional `Federated` resolver adds libravatar DNS federation for domains hosting their own avatars.
*/
package avatar
