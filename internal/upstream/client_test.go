package upstream

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBody(t *testing.T) {
	body, err := ReadBody(strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))

	body, err = ReadBody(bytes.NewReader(make([]byte, MaxBodyBytes)))
	require.NoError(t, err)
	assert.Len(t, body, MaxBodyBytes)

	_, err = ReadBody(bytes.NewReader(make([]byte, MaxBodyBytes+1)))
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestGenomeBio_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"`))
		w.Write(bytes.Repeat([]byte("a"), MaxBodyBytes))
		w.Write([]byte(`"`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenomeBio(context.Background(), "ada")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBodyTooLarge)

	var pe *ParseError
	assert.NotErrorAs(t, err, &pe)
}
