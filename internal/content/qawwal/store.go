package qawwal

import "context"

type Repository interface {
	ListQawwals(context context.Context) ([]*Qawwal, error)
	GetQawwal(context context.Context, id string) (*Qawwal, error)
	GetQawwalsByIDs(context context.Context, ids []string) ([]*Qawwal, error)
	CreateQawwal(context context.Context, q *Qawwal) error
	UpdateQawwal(context context.Context, q *Qawwal) error
	DeleteQawwal(context context.Context, id string) error
	DeleteQawwals(context context.Context, ids []string) (int, error)
}
