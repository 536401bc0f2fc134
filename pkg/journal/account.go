package journal

import "strings"

// AccountSeparator separates the segments of an account path,
// as in "expenses:travel:rail".
const AccountSeparator = ":"

// AccountDepth returns the number of path segments in an account name.
// The empty name has depth zero.
func AccountDepth(name string) int {
	if name == "" {
		return 0
	}
	return strings.Count(name, AccountSeparator) + 1
}

// AccountSegments splits an account name into its path segments.
func AccountSegments(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, AccountSeparator)
}

// ParentAccount returns the account's parent path, or "" for a
// top-level account.
func ParentAccount(name string) string {
	i := strings.LastIndex(name, AccountSeparator)
	if i < 0 {
		return ""
	}
	return name[:i]
}

// IsAccountPrefix reports whether parent is the same account as name or a
// proper ancestor of it. Matching is segment-wise: "a:b" is a prefix of
// "a:b:c" but not of "a:bc".
func IsAccountPrefix(parent, name string) bool {
	if parent == name {
		return true
	}
	return strings.HasPrefix(name, parent+AccountSeparator)
}
