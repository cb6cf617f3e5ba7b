package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gift_registry/internal/domain/service/auth"
	"gift_registry/internal/domain/value"
)

func TestResolve(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		guestToken string
		adminToken string
		credential string
		want       value.Tier
	}{
		{
			name:       "Guest token",
			guestToken: "guest-token",
			adminToken: "admin-token",
			credential: "guest-token",
			want:       value.TierGuest,
		},
		{
			name:       "Admin token",
			guestToken: "guest-token",
			adminToken: "admin-token",
			credential: "admin-token",
			want:       value.TierAdmin,
		},
		{
			name:       "Unknown token",
			guestToken: "guest-token",
			adminToken: "admin-token",
			credential: "who-dis",
			want:       value.TierUnauthorized,
		},
		{
			name:       "Empty credential",
			guestToken: "guest-token",
			adminToken: "admin-token",
			credential: "",
			want:       value.TierUnauthorized,
		},
		{
			name:       "Admin token not configured",
			guestToken: "guest-token",
			adminToken: "",
			credential: "guest-token",
			want:       value.TierGuest,
		},
		{
			name:       "Same token configured for both tiers",
			guestToken: "shared",
			adminToken: "shared",
			credential: "shared",
			want:       value.TierAdmin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			resolver := auth.NewResolver(tc.guestToken, tc.adminToken)

			rq.Equal(tc.want, resolver.Resolve(tc.credential))
		})
	}
}
