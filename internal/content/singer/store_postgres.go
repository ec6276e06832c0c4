package singer

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

const singerColumns = `id, slug, name, genre, bio, birth_date, birthplace, career_start, stats, albums, image, gallery, created_at, updated_at`

func scanSinger(row interface{ Scan(...any) error }) (*Singer, error) {
	s := &Singer{}
	err := row.Scan(
		&s.ID, &s.Slug, &s.Name, &s.Genre, &s.Bio, &s.BirthDate, &s.Birthplace,
		&s.CareerStart, &s.Stats, &s.Albums, &s.Image, &s.Gallery,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) ListSingers(context context.Context) ([]*Singer, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+singerColumns+` FROM singers ORDER BY created_at DESC`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_singers")
	}
	defer rows.Close()

	singers := []*Singer{}
	for rows.Next() {
		s, err := scanSinger(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_singer")
		}
		singers = append(singers, s)
	}

	return singers, nil
}

func (repository *PostgresRepository) GetSinger(context context.Context, id string) (*Singer, error) {
	row := repository.db.QueryRow(context,
		`SELECT `+singerColumns+` FROM singers WHERE id = $1`, id)

	s, err := scanSinger(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_singer")
	}
	return s, nil
}

func (repository *PostgresRepository) GetSingersByIDs(context context.Context, ids []string) ([]*Singer, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+singerColumns+` FROM singers WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_singers_by_ids")
	}
	defer rows.Close()

	singers := []*Singer{}
	for rows.Next() {
		s, err := scanSinger(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_singer")
		}
		singers = append(singers, s)
	}

	return singers, nil
}

func (repository *PostgresRepository) CreateSinger(context context.Context, s *Singer) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO singers (id, slug, name, genre, bio, birth_date, birthplace, career_start, stats, albums, image, gallery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`, s.ID, s.Slug, s.Name, s.Genre, s.Bio, s.BirthDate, s.Birthplace,
		s.CareerStart, s.Stats, s.Albums, s.Image, s.Gallery,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	return dberr.Wrap(err, "create_singer")
}

func (repository *PostgresRepository) UpdateSinger(context context.Context, s *Singer) error {
	err := repository.db.QueryRow(context, `
		UPDATE singers
		SET slug = $2, name = $3, genre = $4, bio = $5, birth_date = $6, birthplace = $7,
		    career_start = $8, stats = $9, albums = $10, image = $11, gallery = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, s.ID, s.Slug, s.Name, s.Genre, s.Bio, s.BirthDate, s.Birthplace,
		s.CareerStart, s.Stats, s.Albums, s.Image, s.Gallery,
	).Scan(&s.UpdatedAt)

	return dberr.Wrap(err, "update_singer")
}

func (repository *PostgresRepository) DeleteSinger(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM singers WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_singer")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteSingers(context context.Context, ids []string) (int, error) {
	cmd, err := repository.db.Exec(context, `DELETE FROM singers WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_singers")
	}

	return int(cmd.RowsAffected()), nil
}
