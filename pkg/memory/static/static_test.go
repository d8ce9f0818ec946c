package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathAllowed(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		path   string
		want   bool
	}{
		{
			name:   "empty policy allows everything",
			policy: Policy{},
			path:   "src/anything.ts",
			want:   true,
		},
		{
			name:   "allowed glob matches",
			policy: Policy{AllowedPaths: []string{"src/**"}},
			path:   "src/deep/nested/file.ts",
			want:   true,
		},
		{
			name:   "outside allowlist",
			policy: Policy{AllowedPaths: []string{"src/**"}},
			path:   "scripts/deploy.sh",
			want:   false,
		},
		{
			name:   "deny wins over allow",
			policy: Policy{AllowedPaths: []string{"src/**"}, BlockedPaths: []string{"src/secrets/**"}},
			path:   "src/secrets/keys.ts",
			want:   false,
		},
		{
			name:   "blocked lockfile",
			policy: Policy{BlockedPaths: []string{"**/package-lock.json"}},
			path:   "package-lock.json",
			want:   false,
		},
		{
			name:   "leading slash normalized",
			policy: Policy{AllowedPaths: []string{"src/**"}},
			path:   "/src/index.ts",
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.PathAllowed(tt.path))
		})
	}
}
