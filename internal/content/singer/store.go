package singer

import "context"

type Repository interface {
	ListSingers(context context.Context) ([]*Singer, error)
	GetSinger(context context.Context, id string) (*Singer, error)
	GetSingersByIDs(context context.Context, ids []string) ([]*Singer, error)
	CreateSinger(context context.Context, s *Singer) error
	UpdateSinger(context context.Context, s *Singer) error
	DeleteSinger(context context.Context, id string) error
	DeleteSingers(context context.Context, ids []string) (int, error)
}
