package userservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	testCases := []struct {
		name        string
		header      string
		expected    string
		expectedErr error
	}{
		{name: "valid bearer header", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "missing header", header: "", expectedErr: ErrNoToken},
		{name: "wrong scheme", header: "Basic abc", expectedErr: ErrNoToken},
		{name: "missing space", header: "Bearerabc", expectedErr: ErrNoToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractToken(tc.header)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, token)
		})
	}
}

func TestVerifyToken(t *testing.T) {
	secret := []byte("testsecret")
	identity := Identity{ID: 42, Username: "dijkstra"}

	t.Run("valid token round-trips the identity", func(t *testing.T) {
		token, err := signToken(identity, secret, time.Hour)
		assert.NoError(t, err)

		got, err := VerifyToken(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, identity, *got)
	})

	t.Run("token signed with the wrong key is invalid", func(t *testing.T) {
		token, err := signToken(identity, []byte("othersecret"), time.Hour)
		assert.NoError(t, err)

		_, err = VerifyToken(token, secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token is reported distinctly", func(t *testing.T) {
		token, err := signToken(identity, secret, -time.Minute)
		assert.NoError(t, err)

		_, err = VerifyToken(token, secret)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := VerifyToken("not.a.token", secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token without identity claims is invalid", func(t *testing.T) {
		token, err := signToken(Identity{}, secret, time.Hour)
		assert.NoError(t, err)

		_, err = VerifyToken(token, secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
