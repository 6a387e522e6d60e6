package blogservice

import (
	"github.com/lauriko/bloglist/internal/common"
)

// Required-field policy: title and url are required, author is optional.
func validateBlog(v *common.Validator, title, url string, likes int) {
	v.Check(title != "", "title", "must be provided")
	v.Check(url != "", "url", "must be provided")
	v.Check(likes >= 0, "likes", "must not be negative")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
