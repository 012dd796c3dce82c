package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"example.com":          "https://example.com",
		"http://example.com/":  "http://example.com",
		"https://example.com":  "https://example.com",
	}
	for in, want := range cases {
		got, err := normalizeBaseURL(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestNormalizeBaseURL_RejectsEmpty(t *testing.T) {
	_, err := normalizeBaseURL("")
	require.Error(t, err)
}

func TestEndpointPaths_AlwaysTrailingSlash(t *testing.T) {
	paths := []string{
		authenticationPath("login"),
		collectionsPath(),
		collectionPath("col1"),
		itemsPath("col1"),
		itemPath("col1", "item1"),
		itemBatchPath("col1"),
		itemTransactionPath("col1"),
		chunkUploadPath("col1", "item1", "chunk1"),
		invitationPath("incoming"),
		membersPath("col1"),
	}
	for _, p := range paths {
		require.Truef(t, len(p) > 0 && p[len(p)-1] == '/', "path %q missing trailing slash", p)
	}
}

func TestListQuery_OnlySetsNonDefaultValues(t *testing.T) {
	q := listQuery(ListOptions{})
	require.Empty(t, q)

	q = listQuery(ListOptions{Stoken: "s1", Limit: 10, Prefetch: PrefetchMedium, WithCollection: true})
	require.Equal(t, "s1", q.Get("stoken"))
	require.Equal(t, "10", q.Get("limit"))
	require.Equal(t, "medium", q.Get("prefetch"))
	require.Equal(t, "true", q.Get("withCollection"))
}
