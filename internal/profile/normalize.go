package profile

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/agenthands/talentscout/internal/model"
	"github.com/agenthands/talentscout/internal/upstream"
)

// Normalize accepts either {person, strengths} or a bare person-like object.
// The latter is wrapped as {person: body, strengths: body.strengths or []}.
// Fields are read loosely, so a numeric id or a fractional count still
// yields a profile.
func Normalize(body []byte) (*model.ProfileData, error) {
	body = bytes.TrimSpace(body)
	if !gjson.ValidBytes(body) {
		return nil, &upstream.ParseError{Err: errors.New("invalid JSON")}
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, &upstream.ParseError{Err: fmt.Errorf("expected object, got %s", doc.Type)}
	}

	if !upstream.Truthy(doc.Get("person")) {
		wrapped, err := wrap(body, doc.Get("strengths"))
		if err != nil {
			return nil, err
		}
		doc = gjson.ParseBytes(wrapped)
	}

	person := doc.Get("person")
	if !person.IsObject() {
		return nil, &upstream.ParseError{Err: fmt.Errorf("expected person object, got %s", person.Type)}
	}
	data := &model.ProfileData{
		Person:    personFrom(person),
		Strengths: []model.Strength{},
	}
	if strengths := doc.Get("strengths"); strengths.IsArray() {
		for _, s := range strengths.Array() {
			if s.IsObject() {
				data.Strengths = append(data.Strengths, strengthFrom(s))
			}
		}
	}
	return data, nil
}

func personFrom(r gjson.Result) model.Person {
	picture := r.Get("picture")
	if !upstream.Truthy(picture) {
		picture = r.Get("imageUrl")
	}
	return model.Person{
		ID:                   r.Get("id").String(),
		Name:                 r.Get("name").String(),
		Picture:              picture.String(),
		ProfessionalHeadline: r.Get("professionalHeadline").String(),
		Username:             r.Get("username").String(),
		Verified:             r.Get("verified").Bool(),
		Weight:               r.Get("weight").Float(),
	}
}

func strengthFrom(r gjson.Result) model.Strength {
	return model.Strength{
		ID:              r.Get("id").String(),
		Code:            int(r.Get("code").Int()),
		Name:            r.Get("name").String(),
		Weight:          r.Get("weight").Float(),
		Recommendations: int(r.Get("recommendations").Int()),
		Experience:      r.Get("experience").String(),
	}
}

func wrap(person []byte, strengths gjson.Result) ([]byte, error) {
	out, err := sjson.SetRawBytes([]byte(`{}`), "person", person)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap person: %w", err)
	}
	raw := []byte(`[]`)
	if upstream.Truthy(strengths) {
		raw = []byte(strengths.Raw)
	}
	out, err = sjson.SetRawBytes(out, "strengths", raw)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap strengths: %w", err)
	}
	return out, nil
}
