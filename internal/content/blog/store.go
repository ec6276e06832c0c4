package blog

import "context"

type Repository interface {
	ListPosts(context context.Context) ([]*Post, error)
	GetPost(context context.Context, id string) (*Post, error)
	GetPostsByIDs(context context.Context, ids []string) ([]*Post, error)
	CreatePost(context context.Context, p *Post) error
	UpdatePost(context context.Context, p *Post) error
	DeletePost(context context.Context, id string) error
	DeletePosts(context context.Context, ids []string) (int, error)
}
