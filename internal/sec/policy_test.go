package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyListMatch(t *testing.T) {
	t.Parallel()

	rules := PolicyList{
		{Pattern: "/health", Policy: Public},
		{Pattern: "/health/*", Policy: Public},
		{Pattern: "/admin/*", Policy: RequireRole, Role: RoleAdmin},
		{Pattern: "/admin*", Policy: Public}, // shadowed by the rule above
	}

	tests := []struct {
		path string
		want Policy
	}{
		{path: "/health", want: Public},
		{path: "/health/live", want: Public},
		{path: "/healthy", want: Authenticated}, // "/health" is exact, "/health/*" needs the slash
		{path: "/admin/users", want: RequireRole},
		{path: "/products", want: Authenticated},
		{path: "/", want: Authenticated},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, rules.Match(test.path).Policy)
		})
	}
}

func TestPolicyListFirstMatchWins(t *testing.T) {
	t.Parallel()

	rules := PolicyList{
		{Pattern: "/a/*", Policy: Public},
		{Pattern: "/a/secret", Policy: Authenticated},
	}
	// the earlier, broader rule wins
	assert.Equal(t, Public, rules.Match("/a/secret").Policy)
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	for _, path := range []string{
		"/health", "/health/live", "/health/ready",
		"/metrics", "/prometheus",
		"/openapi.yaml", "/v3/api-docs", "/swagger-ui/index.html",
	} {
		assert.Equal(t, Public, rules.Match(path).Policy, path)
	}
	for _, path := range []string{"/products", "/products/1", "/"} {
		assert.Equal(t, Authenticated, rules.Match(path).Policy, path)
	}
}
