package class

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

const classColumns = `id, slug, title, type, instrument, hero, features, curriculum, learning_paths, benefits, practice_tips, cta, images, seo, created_at, updated_at`

func scanClass(row interface{ Scan(...any) error }) (*Class, error) {
	c := &Class{}
	err := row.Scan(
		&c.ID, &c.Slug, &c.Title, &c.Type, &c.Instrument,
		&c.Hero, &c.Features, &c.Curriculum, &c.LearningPaths, &c.Benefits,
		&c.PracticeTips, &c.CTA, &c.Images, &c.SEO,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) ListClasses(context context.Context) ([]*Class, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+classColumns+` FROM classes ORDER BY created_at DESC`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_classes")
	}
	defer rows.Close()

	classes := []*Class{}
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_class")
		}
		classes = append(classes, c)
	}

	return classes, nil
}

func (repository *PostgresRepository) GetClass(context context.Context, id string) (*Class, error) {
	row := repository.db.QueryRow(context,
		`SELECT `+classColumns+` FROM classes WHERE id = $1`, id)

	c, err := scanClass(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_class")
	}
	return c, nil
}

func (repository *PostgresRepository) GetClassBySlug(context context.Context, slug string) (*Class, error) {
	row := repository.db.QueryRow(context,
		`SELECT `+classColumns+` FROM classes WHERE slug = $1`, slug)

	c, err := scanClass(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_class_by_slug")
	}
	return c, nil
}

func (repository *PostgresRepository) GetClassesByIDs(context context.Context, ids []string) ([]*Class, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+classColumns+` FROM classes WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_classes_by_ids")
	}
	defer rows.Close()

	classes := []*Class{}
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_class")
		}
		classes = append(classes, c)
	}

	return classes, nil
}

func (repository *PostgresRepository) CreateClass(context context.Context, c *Class) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO classes (id, slug, title, type, instrument, hero, features, curriculum, learning_paths, benefits, practice_tips, cta, images, seo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING created_at, updated_at
	`, c.ID, c.Slug, c.Title, c.Type, c.Instrument,
		c.Hero, c.Features, c.Curriculum, c.LearningPaths, c.Benefits,
		c.PracticeTips, c.CTA, c.Images, c.SEO,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "create_class")
}

func (repository *PostgresRepository) UpdateClass(context context.Context, c *Class) error {
	err := repository.db.QueryRow(context, `
		UPDATE classes
		SET slug = $2, title = $3, type = $4, instrument = $5, hero = $6,
		    features = $7, curriculum = $8, learning_paths = $9, benefits = $10,
		    practice_tips = $11, cta = $12, images = $13, seo = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, c.ID, c.Slug, c.Title, c.Type, c.Instrument,
		c.Hero, c.Features, c.Curriculum, c.LearningPaths, c.Benefits,
		c.PracticeTips, c.CTA, c.Images, c.SEO,
	).Scan(&c.UpdatedAt)

	return dberr.Wrap(err, "update_class")
}

func (repository *PostgresRepository) DeleteClass(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_class")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteClasses(context context.Context, ids []string) (int, error) {
	cmd, err := repository.db.Exec(context, `DELETE FROM classes WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_classes")
	}

	return int(cmd.RowsAffected()), nil
}
