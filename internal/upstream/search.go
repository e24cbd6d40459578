package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/agenthands/talentscout/internal/model"
)

type searchRequest struct {
	Query        string `json:"query"`
	IdentityType string `json:"identityType"`
	Meta         bool   `json:"meta"`
	Limit        int    `json:"limit"`
}

// SearchPeople runs query against the search stream endpoint and returns the
// normalized people in upstream order.
func (c *HTTPClient) SearchPeople(ctx context.Context, query string) ([]model.Person, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	payload, err := json.Marshal(searchRequest{
		Query:        query,
		IdentityType: c.Search.IdentityType,
		Meta:         c.Search.Meta,
		Limit:        c.Search.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.url(c.Config.SearchPath), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	people, err := ParseSearchStream(body)
	if err != nil {
		return nil, err
	}
	if c.Search.Limit > 0 && len(people) > c.Search.Limit {
		people = people[:c.Search.Limit]
	}
	return people, nil
}

// ParseSearchStream decodes a newline-delimited stream of person records.
// Blank lines are skipped; any malformed line fails the whole stream.
func ParseSearchStream(body []byte) ([]model.Person, error) {
	people := []model.Person{}
	for i, line := range bytes.Split(body, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			return nil, &ParseError{Line: i + 1, Err: errors.New("invalid JSON")}
		}
		record := gjson.ParseBytes(line)
		if !record.IsObject() {
			return nil, &ParseError{Line: i + 1, Err: fmt.Errorf("expected object, got %s", record.Type)}
		}
		people = append(people, PersonFromRecord(record))
	}
	return people, nil
}

// PersonFromRecord maps one upstream search record onto a Person.
func PersonFromRecord(r gjson.Result) model.Person {
	id := r.Get("ggId")
	if !Truthy(id) {
		id = r.Get("id")
	}
	return model.Person{
		ID:                   id.String(),
		Name:                 r.Get("name").String(),
		Picture:              r.Get("imageUrl").String(),
		ProfessionalHeadline: r.Get("professionalHeadline").String(),
		Username:             r.Get("username").String(),
		Verified:             r.Get("verified").Bool(),
		Weight:               r.Get("weight").Float(),
	}
}

// Truthy reports whether v is set to something other than null, false, 0
// or the empty string. Optional upstream fields use these as "absent".
func Truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	case gjson.True, gjson.JSON:
		return true
	}
	return false
}
