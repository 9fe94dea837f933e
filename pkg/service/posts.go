package service

import (
	"github.com/polyrpc/demoapi/pkg/resource"
)

// ListPosts returns all posts in insertion order, optionally filtered
// by author. A nil authorID applies no filter.
func (s *Service) ListPosts(authorID *int) []resource.Post {
	posts := s.store.Posts.List()
	if authorID != nil {
		posts = filter(posts, func(p resource.Post) bool { return p.AuthorID == *authorID })
	}
	return posts
}

// CreatePost creates a post. The author is not checked against the user
// collection; a dangling authorId is allowed by contract. Tags default
// to an empty list, published to false.
func (s *Service) CreatePost(req resource.CreatePostRequest) (resource.Post, error) {
	if err := req.Validate().Err(); err != nil {
		return resource.Post{}, err
	}

	tags := req.Tags
	if tags == nil {
		tags = make([]string, 0)
	}
	p := s.store.Posts.Insert(resource.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
		Tags:     tags,
	})
	s.log.Info("post created", "id", p.ID, "authorId", p.AuthorID)
	return p, nil
}
