package models

// Tags is the closed vocabulary a post's user_tag must come from. It is not
// persisted as a table; it only constrains input and drives tag search.
var Tags = []string{"life", "travel", "tech", "food", "music"}

func ValidTag(tag string) bool {
	for _, t := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func ValidTheme(theme int) bool {
	return theme >= 1 && theme <= 3
}
