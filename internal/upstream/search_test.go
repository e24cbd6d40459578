package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/talentscout/internal/config"
	"github.com/agenthands/talentscout/internal/model"
)

func newTestClient(url string) *HTTPClient {
	cfg := config.Default()
	cfg.Upstream.BaseURL = url
	return NewHTTPClient(cfg.Upstream, cfg.Search)
}

func TestSearchPeople_Success(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/entities/_searchStream", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Torre Talent Explorer/1.0", r.Header.Get("User-Agent"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "golang", body["query"])
		assert.Equal(t, "person", body["identityType"])
		assert.Equal(t, false, body["meta"])
		assert.Equal(t, float64(20), body["limit"])

		w.Write([]byte(`{"ggId":"g1","id":"x1","name":"Ada","imageUrl":"http://img/a","professionalHeadline":"Engineer","username":"ada","verified":true,"weight":4.5}

{"id":"x2","name":"Bob","username":"bob"}
{"ggId":"","id":"x3","name":"Cy","username":"cy","weight":null}
`))
	}))
	defer server.Close()

	people, err := newTestClient(server.URL).SearchPeople(context.Background(), "  golang ")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	require.Len(t, people, 3)
	assert.Equal(t, model.Person{
		ID:                   "g1",
		Name:                 "Ada",
		Picture:              "http://img/a",
		ProfessionalHeadline: "Engineer",
		Username:             "ada",
		Verified:             true,
		Weight:               4.5,
	}, people[0])
	assert.Equal(t, "x2", people[1].ID)
	assert.False(t, people[1].Verified)
	assert.Zero(t, people[1].Weight)
	assert.Equal(t, "x3", people[2].ID)
	assert.Zero(t, people[2].Weight)
}

func TestSearchPeople_EmptyQueryNeverCallsUpstream(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	for _, q := range []string{"", " ", "\t\n"} {
		_, err := client.SearchPeople(context.Background(), q)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestSearchPeople_CapsAtLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 25; i++ {
			fmt.Fprintf(w, "{\"id\":\"%d\",\"name\":\"p%d\"}\n", i, i)
		}
	}))
	defer server.Close()

	people, err := newTestClient(server.URL).SearchPeople(context.Background(), "many")
	require.NoError(t, err)
	assert.Len(t, people, 20)
	assert.Equal(t, "0", people[0].ID)
	assert.Equal(t, "19", people[19].ID)
}

func TestSearchPeople_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchPeople(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestSearchPeople_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).SearchPeople(context.Background(), "q")
	require.Error(t, err)
	assert.Zero(t, StatusOf(err))
}

func TestSearchPeople_Idempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{\"id\":\"b\"}\n{\"id\":\"a\"}\n{\"id\":\"c\"}\n"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	first, err := client.SearchPeople(context.Background(), "q")
	require.NoError(t, err)
	second, err := client.SearchPeople(context.Background(), "q")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"b", "a", "c"}, []string{first[0].ID, first[1].ID, first[2].ID})
}

func TestParseSearchStream(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLen  int
		wantLine int
	}{
		{name: "empty body", body: "", wantLen: 0},
		{name: "only blank lines", body: "\n  \n\r\n", wantLen: 0},
		{name: "crlf lines", body: "{\"id\":\"1\"}\r\n{\"id\":\"2\"}\r\n", wantLen: 2},
		{name: "malformed middle line", body: "{\"id\":\"1\"}\n{oops\n{\"id\":\"3\"}", wantLine: 2},
		{name: "non object line", body: "{\"id\":\"1\"}\n[1,2]", wantLine: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people, err := ParseSearchStream([]byte(tt.body))
			if tt.wantLine > 0 {
				var pe *ParseError
				require.True(t, errors.As(err, &pe), "expected ParseError, got %v", err)
				assert.Equal(t, tt.wantLine, pe.Line)
				assert.Nil(t, people)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, people)
			assert.Len(t, people, tt.wantLen)
		})
	}
}

func TestPersonFromRecord_NumericIDs(t *testing.T) {
	people, err := ParseSearchStream([]byte(`{"ggId":0,"id":42,"name":"N"}`))
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "42", people[0].ID)
	assert.Equal(t, "N", people[0].Name)
}
