package qawwal

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

const qawwalColumns = `id, slug, name, bio, birth_date, birthplace, career_start, stats, image, gallery, created_at, updated_at`

func scanQawwal(row interface{ Scan(...any) error }) (*Qawwal, error) {
	q := &Qawwal{}
	err := row.Scan(
		&q.ID, &q.Slug, &q.Name, &q.Bio, &q.BirthDate, &q.Birthplace,
		&q.CareerStart, &q.Stats, &q.Image, &q.Gallery,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (repository *PostgresRepository) ListQawwals(context context.Context) ([]*Qawwal, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+qawwalColumns+` FROM qawwals ORDER BY created_at DESC`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_qawwals")
	}
	defer rows.Close()

	qawwals := []*Qawwal{}
	for rows.Next() {
		q, err := scanQawwal(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_qawwal")
		}
		qawwals = append(qawwals, q)
	}

	return qawwals, nil
}

func (repository *PostgresRepository) GetQawwal(context context.Context, id string) (*Qawwal, error) {
	row := repository.db.QueryRow(context,
		`SELECT `+qawwalColumns+` FROM qawwals WHERE id = $1`, id)

	q, err := scanQawwal(row)
	if err != nil {
		return nil, dberr.Wrap(err, "get_qawwal")
	}
	return q, nil
}

func (repository *PostgresRepository) GetQawwalsByIDs(context context.Context, ids []string) ([]*Qawwal, error) {
	rows, err := repository.db.Query(context,
		`SELECT `+qawwalColumns+` FROM qawwals WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_qawwals_by_ids")
	}
	defer rows.Close()

	qawwals := []*Qawwal{}
	for rows.Next() {
		q, err := scanQawwal(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_qawwal")
		}
		qawwals = append(qawwals, q)
	}

	return qawwals, nil
}

func (repository *PostgresRepository) CreateQawwal(context context.Context, q *Qawwal) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO qawwals (id, slug, name, bio, birth_date, birthplace, career_start, stats, image, gallery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`, q.ID, q.Slug, q.Name, q.Bio, q.BirthDate, q.Birthplace,
		q.CareerStart, q.Stats, q.Image, q.Gallery,
	).Scan(&q.CreatedAt, &q.UpdatedAt)

	return dberr.Wrap(err, "create_qawwal")
}

func (repository *PostgresRepository) UpdateQawwal(context context.Context, q *Qawwal) error {
	err := repository.db.QueryRow(context, `
		UPDATE qawwals
		SET slug = $2, name = $3, bio = $4, birth_date = $5, birthplace = $6,
		    career_start = $7, stats = $8, image = $9, gallery = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, q.ID, q.Slug, q.Name, q.Bio, q.BirthDate, q.Birthplace,
		q.CareerStart, q.Stats, q.Image, q.Gallery,
	).Scan(&q.UpdatedAt)

	return dberr.Wrap(err, "update_qawwal")
}

func (repository *PostgresRepository) DeleteQawwal(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM qawwals WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_qawwal")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteQawwals(context context.Context, ids []string) (int, error) {
	cmd, err := repository.db.Exec(context, `DELETE FROM qawwals WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_qawwals")
	}

	return int(cmd.RowsAffected()), nil
}
