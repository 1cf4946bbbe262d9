package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ncnews/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTestBody(t *testing.T, raw string) requestBody {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(raw))
	body, err := decodeBody(r)
	require.NoError(t, err)
	return body
}

func TestDecodeBody_RejectsNonObjects(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader("not json"))
	_, err := decodeBody(r)
	assert.ErrorIs(t, err, store.ErrInvalidBody)
}

func TestRequireTruthy(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		fields  []string
		wantErr bool
	}{
		{name: "all present", raw: `{"username":"lurker","body":"nice"}`, fields: []string{"username", "body"}},
		{name: "missing field", raw: `{"username":"lurker"}`, fields: []string{"username", "body"}, wantErr: true},
		// Presence is not enough: empty values are invalid too.
		{name: "empty string", raw: `{"username":"lurker","body":""}`, fields: []string{"username", "body"}, wantErr: true},
		{name: "explicit null", raw: `{"body":null}`, fields: []string{"body"}, wantErr: true},
		{name: "zero number", raw: `{"inc_votes":0}`, fields: []string{"inc_votes"}, wantErr: true},
		{name: "negative number", raw: `{"inc_votes":-5}`, fields: []string{"inc_votes"}},
		{name: "false", raw: `{"flag":false}`, fields: []string{"flag"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := decodeTestBody(t, tc.raw)
			err := body.requireTruthy(tc.fields...)
			if tc.wantErr {
				assert.ErrorIs(t, err, store.ErrInvalidBody)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStringField(t *testing.T) {
	body := decodeTestBody(t, `{"title":"hello","votes":3}`)

	s, err := body.stringField("title", "")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	s, err = body.stringField("absent", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s)

	_, err = body.stringField("votes", "")
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

func TestIntField(t *testing.T) {
	body := decodeTestBody(t, `{"inc_votes":-100,"half":0.5,"word":"ten"}`)

	n, err := body.intField("inc_votes")
	require.NoError(t, err)
	assert.Equal(t, -100, n)

	_, err = body.intField("half")
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = body.intField("word")
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = body.intField("absent")
	assert.ErrorIs(t, err, store.ErrInvalidBody)
}
