package quotable

import (
	"fmt"
	"strings"
)

// TagCombinator controls how the service combines several tag filters.
type TagCombinator int

const (
	// TagsAll matches quotes carrying every listed tag.
	TagsAll TagCombinator = iota
	// TagsAny matches quotes carrying at least one listed tag.
	TagsAny
)

// A comma-joined tag list is read as OR; the pipe is the AND token.
const (
	allSeparator = "|"
	anySeparator = ","
)

// String returns "all" or "any".
func (c TagCombinator) String() string {
	if c == TagsAny {
		return "any"
	}
	return "all"
}

// Separator returns the join token the service associates with c.
func (c TagCombinator) Separator() string {
	if c == TagsAny {
		return anySeparator
	}
	return allSeparator
}

// ParseTagCombinator maps "all"/"and" and "any"/"or" to a TagCombinator.
// An empty string yields TagsAll.
func ParseTagCombinator(s string) (TagCombinator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "and":
		return TagsAll, nil
	case "any", "or", "either":
		return TagsAny, nil
	}
	return TagsAll, fmt.Errorf("invalid tag mode: %s (must be 'all' or 'any')", s)
}

// EncodeTags joins tags with the separator of mode. Order is kept as given;
// tags are not deduplicated, case-folded or escaped.
func EncodeTags(tags []string, mode TagCombinator) string {
	return strings.Join(tags, mode.Separator())
}

// EncodeAuthors joins authors with a comma, keeping the caller's order.
func EncodeAuthors(authors []string) string {
	return strings.Join(authors, ",")
}
