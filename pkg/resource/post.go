package resource

import (
	"github.com/polyrpc/demoapi/pkg/validation"
)

// Post is a blog post. AuthorID references a User by id but is not
// enforced as a foreign key; deleting the author leaves it dangling.
type Post struct {
	// ID is assigned by the store and immutable after creation.
	ID        int      `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Content   string   `json:"content" yaml:"content"`
	AuthorID  int      `json:"authorId" yaml:"authorId"`
	Tags      []string `json:"tags" yaml:"tags"`
	Published bool     `json:"published" yaml:"published"`
}

// CreatePostRequest is the input for post creation. Tags default to an
// empty list, published to false.
type CreatePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	AuthorID int      `json:"authorId"`
	Tags     []string `json:"tags,omitempty"`
}

// Validate checks the request fields.
func (r *CreatePostRequest) Validate() *validation.Result {
	res := validation.NewResult()
	if r.Title == "" {
		res.AddError(validation.NewRequiredError("title", validation.LocationBody))
	}
	if r.Content == "" {
		res.AddError(validation.NewRequiredError("content", validation.LocationBody))
	}
	if r.AuthorID < 1 {
		res.AddError(validation.NewMinError("authorId", validation.LocationBody, 1, r.AuthorID))
	}
	return res
}
