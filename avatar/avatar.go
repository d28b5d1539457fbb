package avatar

import (
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"net/url"
)

// Rendering parameters applied when the caller passes zero values.
const (
	DefaultSize  = 64
	DefaultStyle = "retro"
)

var cdnURL = "https://seccdn.libravatar.org/avatar/"

// Service accounts whose avatars are not hosted on libravatar. Checked before
// any hash-based URL generation; the size is formatted into the template and
// the style parameter is ignored.
// https://github.com/fedora-infra/fedmsg_meta_fedora_infrastructure/issues/320
var hardcodedAvatars = map[string]string{
	"bodhi":     "https://apps.fedoraproject.org/img/icons/bodhi-%d.png",
	"koschei":   "https://apps.fedoraproject.org/img/icons/koschei-%d.png",
	"taskotron": "https://apps.fedoraproject.org/img/icons/taskotron-%d.png",
}

// URLForUsername returns the avatar URL for a Fedora account username.
//
// Usernames in the hardcoded service-account table get that entry's URL.
// All other usernames are mapped to their Fedora OpenID identity and resolved
// through URLForOpenID. A size of zero or negative means DefaultSize; an empty
// style means DefaultStyle.
func URLForUsername(username string, size int, style string) string {
	if size <= 0 {
		size = DefaultSize
	}
	if tmpl, ok := hardcodedAvatars[username]; ok {
		return fmt.Sprintf(tmpl, size)
	}
	openid := fmt.Sprintf("http://%s.id.fedoraproject.org/", username)
	return URLForOpenID(openid, size, style)
}

// URLForOpenID returns the libravatar CDN URL for an OpenID identity string,
// embedding the SHA-256 hex digest of the identity.
//
// The result is deterministic, and the function never fails: an empty or
// malformed identity still produces a well-formed URL.
func URLForOpenID(openid string, size int, style string) string {
	digest := sha256.Sum256([]byte(openid))
	return fmt.Sprintf("%s%x?%s", cdnURL, digest, renderQuery(size, style))
}

// URLForEmail returns the libravatar CDN URL for an email address, embedding
// the MD5 hex digest of the address.
func URLForEmail(email string, size int, style string) string {
	digest := md5.Sum([]byte(email))
	return fmt.Sprintf("%s%x?%s", cdnURL, digest, renderQuery(size, style))
}

// renderQuery keeps "s" ahead of "d". url.Values.Encode sorts keys
// alphabetically, which would flip the order.
func renderQuery(size int, style string) string {
	if size <= 0 {
		size = DefaultSize
	}
	if style == "" {
		style = DefaultStyle
	}
	return fmt.Sprintf("s=%d&d=%s", size, url.QueryEscape(style))
}
