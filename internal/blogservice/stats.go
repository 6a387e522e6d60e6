package blogservice

// Aggregate statistics over an in-memory blog collection. Every function is
// pure, never mutates its input, and is total over the empty slice: the
// result is a zero value rather than an error.
//
// Tie-break rule: leaders are only replaced on a strictly greater value, so
// the first blog or author to reach a maximum while scanning the input in
// order wins.

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type BlogStats struct {
	TotalLikes int         `json:"totalLikes"`
	Favorite   Blog        `json:"favorite"`
	MostBlogs  AuthorBlogs `json:"mostBlogs"`
	MostLikes  AuthorLikes `json:"mostLikes"`
}

// TotalLikes sums likes across all blogs.
func TotalLikes(blogs []Blog) int {
	var total int
	for _, blog := range blogs {
		total += blog.Likes
	}

	return total
}

// FavoriteBlog returns the single blog with the most likes.
func FavoriteBlog(blogs []Blog) Blog {
	if len(blogs) == 0 {
		return Blog{}
	}

	favorite := blogs[0]
	for _, blog := range blogs[1:] {
		if blog.Likes > favorite.Likes {
			favorite = blog
		}
	}

	return favorite
}

// MostBlogs returns the author with the most blog entries. Authors are
// grouped by exact string match; the running count is compared against the
// current leader after every record, mirroring a single scan of the input.
func MostBlogs(blogs []Blog) AuthorBlogs {
	counts := make(map[string]int)

	var leader AuthorBlogs
	for _, blog := range blogs {
		counts[blog.Author]++
		if counts[blog.Author] > leader.Blogs {
			leader = AuthorBlogs{Author: blog.Author, Blogs: counts[blog.Author]}
		}
	}

	return leader
}

// MostLikes returns the author with the highest cumulative likes.
func MostLikes(blogs []Blog) AuthorLikes {
	sums := make(map[string]int)

	var leader AuthorLikes
	var found bool
	for _, blog := range blogs {
		sums[blog.Author] += blog.Likes
		if !found || sums[blog.Author] > leader.Likes {
			leader = AuthorLikes{Author: blog.Author, Likes: sums[blog.Author]}
			found = true
		}
	}

	return leader
}
