package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devconnect/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (domain.Profile, error)
	GetByHandle(ctx context.Context, handle string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, profileID string, exp domain.Experience) error
	DeleteExperience(ctx context.Context, profileID, expID string) (bool, error)
	AddEducation(ctx context.Context, profileID string, edu domain.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID string) (bool, error)
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `
	id, user_id, handle, company, website, location, status, skills, bio,
	github_username, youtube, twitter, facebook, linkedin, instagram,
	created_at, updated_at
`

// Upsert crea o actualiza el perfil del usuario en una sola sentencia.
// La unicidad del handle la garantiza el constraint UNIQUE de la tabla.
func (r *PgProfileRepository) Upsert(ctx context.Context, p domain.Profile) error {
	const query = `
		INSERT INTO profiles (
			id, user_id, handle, company, website, location, status, skills, bio,
			github_username, youtube, twitter, facebook, linkedin, instagram,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		ON CONFLICT (user_id) DO UPDATE SET
			handle = EXCLUDED.handle,
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			youtube = EXCLUDED.youtube,
			twitter = EXCLUDED.twitter,
			facebook = EXCLUDED.facebook,
			linkedin = EXCLUDED.linkedin,
			instagram = EXCLUDED.instagram,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.Handle,
		p.Company,
		p.Website,
		p.Location,
		p.Status,
		p.Skills,
		p.Bio,
		p.GithubUsername,
		p.Social.Youtube,
		p.Social.Twitter,
		p.Social.Facebook,
		p.Social.Linkedin,
		p.Social.Instagram,
		p.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *PgProfileRepository) GetByHandle(ctx context.Context, handle string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE handle = $1`
	return r.getOne(ctx, query, handle)
}

func (r *PgProfileRepository) getOne(ctx context.Context, query string, arg any) (domain.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return domain.Profile{}, err
	}
	if err := r.loadEntries(ctx, &p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (r *PgProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range profiles {
		if err := r.loadEntries(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (r *PgProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	const query = `DELETE FROM profiles WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

func (r *PgProfileRepository) AddExperience(ctx context.Context, profileID string, exp domain.Experience) error {
	const query = `
		INSERT INTO experiences (id, profile_id, title, company, location, from_date, to_date, current, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		exp.ID,
		profileID,
		exp.Title,
		exp.Company,
		exp.Location,
		exp.From,
		exp.To,
		exp.Current,
		exp.Description,
		exp.CreatedAt,
	)
	return err
}

// DeleteExperience devuelve false si la entrada no existía.
func (r *PgProfileRepository) DeleteExperience(ctx context.Context, profileID, expID string) (bool, error) {
	const query = `DELETE FROM experiences WHERE id = $1 AND profile_id = $2`
	tag, err := r.pool.Exec(ctx, query, expID, profileID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgProfileRepository) AddEducation(ctx context.Context, profileID string, edu domain.Education) error {
	const query = `
		INSERT INTO educations (id, profile_id, school, degree, field_of_study, from_date, to_date, current, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		edu.ID,
		profileID,
		edu.School,
		edu.Degree,
		edu.FieldOfStudy,
		edu.From,
		edu.To,
		edu.Current,
		edu.Description,
		edu.CreatedAt,
	)
	return err
}

// DeleteEducation devuelve false si la entrada no existía.
func (r *PgProfileRepository) DeleteEducation(ctx context.Context, profileID, eduID string) (bool, error) {
	const query = `DELETE FROM educations WHERE id = $1 AND profile_id = $2`
	tag, err := r.pool.Exec(ctx, query, eduID, profileID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgProfileRepository) loadEntries(ctx context.Context, p *domain.Profile) error {
	const expQuery = `
		SELECT id, title, company, location, from_date, to_date, current, description, created_at
		FROM experiences
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`
	expRows, err := r.pool.Query(ctx, expQuery, p.ID)
	if err != nil {
		return err
	}
	defer expRows.Close()

	p.Experience = []domain.Experience{}
	for expRows.Next() {
		var e domain.Experience
		if err := expRows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.From, &e.To, &e.Current, &e.Description, &e.CreatedAt); err != nil {
			return err
		}
		p.Experience = append(p.Experience, e)
	}
	if err := expRows.Err(); err != nil {
		return err
	}

	const eduQuery = `
		SELECT id, school, degree, field_of_study, from_date, to_date, current, description, created_at
		FROM educations
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`
	eduRows, err := r.pool.Query(ctx, eduQuery, p.ID)
	if err != nil {
		return err
	}
	defer eduRows.Close()

	p.Education = []domain.Education{}
	for eduRows.Next() {
		var e domain.Education
		if err := eduRows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &e.To, &e.Current, &e.Description, &e.CreatedAt); err != nil {
			return err
		}
		p.Education = append(p.Education, e)
	}
	return eduRows.Err()
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Handle,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Status,
		&p.Skills,
		&p.Bio,
		&p.GithubUsername,
		&p.Social.Youtube,
		&p.Social.Twitter,
		&p.Social.Facebook,
		&p.Social.Linkedin,
		&p.Social.Instagram,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}
	return p, err
}
