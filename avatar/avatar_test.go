package avatar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardcodedAvatars(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		"https://apps.fedoraproject.org/img/icons/bodhi-32.png",
		URLForUsername("bodhi", 32, "retro"),
	)
	assert.Equal(
		"https://apps.fedoraproject.org/img/icons/taskotron-64.png",
		URLForUsername("taskotron", 0, ""),
	)

	// the style parameter is ignored for hardcoded entries
	assert.Equal(
		URLForUsername("koschei", 16, "retro"),
		URLForUsername("koschei", 16, "mm"),
	)
}

func TestURLForUsername(t *testing.T) {
	assert := assert.New(t)

	// sha256 of "http://ralph.id.fedoraproject.org/"
	assert.Equal(
		"https://seccdn.libravatar.org/avatar/9c9f7784935381befc302fe3c814f9136e7a33953d0318761669b8643f4df55c?s=64&d=retro",
		URLForUsername("ralph", 0, ""),
	)

	// same identity string resolved directly through the OpenID path
	assert.Equal(
		URLForUsername("ralph", 128, "mm"),
		URLForOpenID("http://ralph.id.fedoraproject.org/", 128, "mm"),
	)
}

func TestURLForOpenIDDeterministic(t *testing.T) {
	assert := assert.New(t)

	first := URLForOpenID("http://jcline.id.fedoraproject.org/", 64, "retro")
	second := URLForOpenID("http://jcline.id.fedoraproject.org/", 64, "retro")
	assert.Equal(first, second)
	assert.Contains(first, "ea181a99533a98f797cc7164c217bf67096698ea9565cf60ea0c5dd420a8ce44")
}

func TestURLForEmail(t *testing.T) {
	assert := assert.New(t)

	// md5 of "jcline@redhat.com"
	assert.Equal(
		"https://seccdn.libravatar.org/avatar/5419b39c56c4b151f6178ad3d5624e75?s=64&d=retro",
		URLForEmail("jcline@redhat.com", 64, "retro"),
	)
}

func TestQueryParamOrder(t *testing.T) {
	assert := assert.New(t)

	// "s" must come before "d", unlike url.Values.Encode ordering
	assert.True(strings.HasSuffix(URLForEmail("person@example.com", 16, "mm"), "?s=16&d=mm"))
	assert.True(strings.HasSuffix(URLForOpenID("http://example.id.fedoraproject.org/", 16, "mm"), "?s=16&d=mm"))
}

func TestEmptyInput(t *testing.T) {
	assert := assert.New(t)

	// empty identities produce well-formed URLs rather than failing;
	// md5("") and sha256("") respectively
	assert.Equal(
		"https://seccdn.libravatar.org/avatar/d41d8cd98f00b204e9800998ecf8427e?s=64&d=retro",
		URLForEmail("", 0, ""),
	)
	assert.Equal(
		"https://seccdn.libravatar.org/avatar/e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855?s=64&d=retro",
		URLForOpenID("", 0, ""),
	)
}
