package backend

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/vaultmesh/synccore/internal/errs"
)

// mapHTTPError translates a resty response's status code into the
// engine's error-kind taxonomy per the status table: 401→Unauthorized,
// 403→PermissionDenied, 404→NotFound, 409→Conflict,
// 502/503/504→TemporaryServer, other 5xx→Server, else→Http.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	e := errs.FromHTTPStatus(status, body)
	return e
}

// mapTransportError wraps a resty request-level failure (DNS, connect,
// timeout — anything that never produced an HTTP response) as
// errs.Network.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}
	return errs.New(errs.Network, err.Error())
}
