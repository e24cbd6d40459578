package upstream

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// GenomeBio fetches the genome bio for username. A 404 surfaces as a
// *StatusError matching ErrNotFound, an answer without data as ErrEmptyBody.
func (c *HTTPClient) GenomeBio(ctx context.Context, username string) ([]byte, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	path := strings.ReplaceAll(c.Config.GenomePath, "{username}", url.PathEscape(username))
	req, err := c.newRequest(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if err := CheckDocument(body); err != nil {
		return nil, err
	}
	return body, nil
}

// CheckDocument validates a single JSON document and rejects the empty
// ones: no body, null, false, 0, "", {} and [].
func CheckDocument(body []byte) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ErrEmptyBody
	}
	if !gjson.ValidBytes(body) {
		return &ParseError{Err: errors.New("invalid JSON")}
	}
	if isEmptyValue(gjson.ParseBytes(body)) {
		return ErrEmptyBody
	}
	return nil
}

func isEmptyValue(v gjson.Result) bool {
	switch {
	case v.IsObject():
		empty := true
		v.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	case v.IsArray():
		return len(v.Array()) == 0
	default:
		return !Truthy(v)
	}
}
