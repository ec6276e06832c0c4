package blog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const postColumns = `id, slug, title, content, date, author, category, excerpt, metadata, image, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (*Post, error) {
	p := &Post{}
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Content, &p.Date, &p.Author,
		&p.Category, &p.Excerpt, &p.Metadata, &p.Image,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) ListPosts(context context.Context) ([]*Post, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+postColumns+` FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (repository *PostgresRepository) GetPost(context context.Context, id string) (*Post, error) {
	row := repository.db.QueryRow(context,
		`SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id)

	p, err := scanPost(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}
	return p, nil
}

func (repository *PostgresRepository) GetPostsByIDs(context context.Context, ids []string) ([]*Post, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+postColumns+` FROM blog_posts WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_posts_by_ids")
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (repository *PostgresRepository) CreatePost(context context.Context, p *Post) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO blog_posts (id, slug, title, content, date, author, category, excerpt, metadata, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.Slug, p.Title, p.Content, p.Date, p.Author,
		p.Category, p.Excerpt, p.Metadata, p.Image,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) UpdatePost(context context.Context, p *Post) error {
	err := repository.db.QueryRow(context, `
		UPDATE blog_posts
		SET slug = $2, title = $3, content = $4, date = $5, author = $6,
		    category = $7, excerpt = $8, metadata = $9, image = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, p.ID, p.Slug, p.Title, p.Content, p.Date, p.Author,
		p.Category, p.Excerpt, p.Metadata, p.Image,
	).Scan(&p.UpdatedAt)

	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) DeletePost(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeletePosts(context context.Context, ids []string) (int, error) {
	cmd, err := repository.db.Exec(context, `DELETE FROM blog_posts WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_posts")
	}

	return int(cmd.RowsAffected()), nil
}
