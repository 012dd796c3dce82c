package backend

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// apiPrefix is the fixed path segment every endpoint lives under:
// <serverUrl>/api/v1/<segment>/....
const apiPrefix = "/api/v1"

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("backend: empty server url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("backend: parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("backend: server url must include scheme and host")
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// withTrailingSlash enforces the trailing-slash convention every
// endpoint path requires.
func withTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}

func authenticationPath(action string) string {
	return withTrailingSlash(apiPrefix + "/authentication/" + action)
}

func collectionsPath() string {
	return withTrailingSlash(apiPrefix + "/collection")
}

func collectionPath(colUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID)
}

func itemsPath(colUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item")
}

func itemPath(colUID, itemUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item/" + itemUID)
}

func itemBatchPath(colUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item/batch")
}

func itemTransactionPath(colUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item/transaction")
}

func itemFetchUpdatesPath(colUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item/fetch_updates")
}

func itemRevisionsPath(colUID, itemUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item/" + itemUID + "/revision")
}

func chunkUploadPath(colUID, itemUID string, chunkUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item/" + itemUID + "/chunk/" + chunkUID)
}

func chunkDownloadPath(colUID, itemUID string, chunkUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/item/" + itemUID + "/chunk/" + chunkUID + "/download")
}

func invitationPath(direction string) string {
	return withTrailingSlash(apiPrefix + "/invitation/" + direction)
}

func invitationByUIDPath(invitationUID string) string {
	return withTrailingSlash(apiPrefix + "/invitation/incoming/" + invitationUID)
}

func membersPath(colUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/member")
}

func memberPath(colUID, username string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/member/" + username)
}

func leaveCollectionPath(colUID string) string {
	return withTrailingSlash(apiPrefix + "/collection/" + colUID + "/member/leave")
}

func userProfilePath(username string) string {
	return withTrailingSlash(apiPrefix + "/user/" + username + "/profile")
}

// listQuery builds the query parameters §6 defines for list/fetch
// calls: stoken, iterator, limit, withCollection, prefetch.
func listQuery(opts ListOptions) url.Values {
	q := url.Values{}
	if opts.Stoken != "" {
		q.Set("stoken", opts.Stoken)
	}
	if opts.IteratorToken != "" {
		q.Set("iterator", opts.IteratorToken)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.WithCollection {
		q.Set("withCollection", "true")
	}
	if opts.Prefetch != "" {
		q.Set("prefetch", string(opts.Prefetch))
	}
	return q
}
