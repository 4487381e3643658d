package html

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// ContentPolicy returns the default policy applied to region content: the
// bluemonday UGC policy plus class and data attributes, which block markup
// relies on for Bootstrap styling.
func ContentPolicy() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowDataAttributes()
		policy.AllowElements("section", "article", "figure", "figcaption", "picture", "source")
		policy.AllowAttrs("srcset", "media", "type").OnElements("source")
		contentPolicy = policy
	})
	return contentPolicy
}
