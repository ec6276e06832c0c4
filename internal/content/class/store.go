package class

import "context"

type Repository interface {
	ListClasses(context context.Context) ([]*Class, error)
	GetClass(context context.Context, id string) (*Class, error)
	GetClassBySlug(context context.Context, slug string) (*Class, error)
	GetClassesByIDs(context context.Context, ids []string) ([]*Class, error)
	CreateClass(context context.Context, c *Class) error
	UpdateClass(context context.Context, c *Class) error
	DeleteClass(context context.Context, id string) error
	DeleteClasses(context context.Context, ids []string) (int, error)
}
