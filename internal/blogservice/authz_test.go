package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lauriko/bloglist/internal/userservice"
)

func TestAuthorizeOwner(t *testing.T) {
	owner := &userservice.Identity{ID: 1, Username: "creator"}
	other := &userservice.Identity{ID: 2, Username: "someone"}
	blog := &Blog{ID: 10, Title: "Test Blog", URL: "http://example.com", User: Owner{ID: 1, Username: "creator"}}

	testCases := []struct {
		name        string
		identity    *userservice.Identity
		blog        *Blog
		expectedErr error
	}{
		{name: "owner may mutate", identity: owner, blog: blog, expectedErr: nil},
		{name: "non-owner is forbidden", identity: other, blog: blog, expectedErr: ErrNotOwner},
		{name: "nil identity is forbidden", identity: nil, blog: blog, expectedErr: ErrNotOwner},
		{name: "missing blog is not found", identity: owner, blog: nil, expectedErr: ErrRecordNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := AuthorizeOwner(tc.identity, tc.blog)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestErrNotOwnerMessage(t *testing.T) {
	assert.Equal(t, "User can only delete the blogs they have created", ErrNotOwner.Error())
}
