package blogservice

import (
	"errors"

	"github.com/lauriko/bloglist/internal/userservice"
)

var (
	// ErrNotOwner is surfaced verbatim to the client when a mutation is
	// attempted by a user other than the blog's creator.
	ErrNotOwner = errors.New("User can only delete the blogs they have created")
)

// AuthorizeOwner decides whether the authenticated identity may mutate the
// target blog. The caller supplies the already-fetched record; the decision
// never touches storage. A nil blog signals that the id did not resolve.
func AuthorizeOwner(identity *userservice.Identity, blog *Blog) error {
	if blog == nil {
		return ErrRecordNotFound
	}

	if identity == nil || blog.User.ID != identity.ID {
		return ErrNotOwner
	}

	return nil
}
