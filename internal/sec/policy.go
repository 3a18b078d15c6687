package sec

import "strings"

// Policy is the access decision attached to a route rule.
type Policy int

// The supported policies.
const (
	// Authenticated requires a valid Basic Auth credential pair.
	Authenticated Policy = iota
	// Public bypasses authentication entirely.
	Public
	// RequireRole requires authentication and a specific role.
	RequireRole
)

// Rule pairs a path pattern with a policy. A pattern is matched against the
// raw request path: a trailing "*" matches any suffix, otherwise the match is
// exact.
type Rule struct {
	Pattern string
	Policy  Policy
	// Role is consulted only when Policy is RequireRole.
	Role Role
}

// Matches reports whether the rule applies to the given request path.
func (r Rule) Matches(path string) bool {
	if prefix, ok := strings.CutSuffix(r.Pattern, "*"); ok {
		return strings.HasPrefix(path, prefix)
	}
	return r.Pattern == path
}

// PolicyList is an ordered set of rules evaluated first-match-wins. Paths
// matching no rule require authentication.
type PolicyList []Rule

// Match returns the first rule applying to path, or a default
// authentication-required rule if none does.
func (l PolicyList) Match(path string) Rule {
	for _, rule := range l {
		if rule.Matches(path) {
			return rule
		}
	}
	return Rule{Policy: Authenticated}
}

// DefaultRules returns the route policies for the service: operational and
// documentation endpoints are public, everything else requires
// authentication.
func DefaultRules() PolicyList {
	return PolicyList{
		{Pattern: "/health", Policy: Public},
		{Pattern: "/health/*", Policy: Public},
		{Pattern: "/metrics", Policy: Public},
		{Pattern: "/prometheus", Policy: Public},
		{Pattern: "/openapi.yaml", Policy: Public},
		{Pattern: "/v3/api-docs*", Policy: Public},
		{Pattern: "/swagger-ui*", Policy: Public},
	}
}
