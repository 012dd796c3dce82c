package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{http.StatusUnauthorized, Unauthorized},
		{http.StatusForbidden, PermissionDenied},
		{http.StatusNotFound, NotFound},
		{http.StatusConflict, Conflict},
		{http.StatusBadGateway, TemporaryServer},
		{http.StatusServiceUnavailable, TemporaryServer},
		{http.StatusGatewayTimeout, TemporaryServer},
		{http.StatusInternalServerError, Server},
		{http.StatusTeapot, Http},
	}

	for _, tc := range cases {
		err := FromHTTPStatus(tc.status, "detail")
		require.True(t, Is(err, tc.want), "status %d should map to %v, got %v", tc.status, tc.want, err.Kind)
	}
}

func TestError_UnwrapsToKind(t *testing.T) {
	err := New(Conflict, "stale etag")
	require.ErrorIs(t, err, Conflict)
	require.NotErrorIs(t, err, Unauthorized)
	require.Contains(t, err.Error(), "stale etag")
}
