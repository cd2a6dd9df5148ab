package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"confcentral/internal/domain"
)

const conferenceColumns = `id, name, description, organizer_id, topics, city, start_date, end_date, month, max_attendees, seats_available, created_at, updated_at`

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	var descNull sql.NullString
	var startNull, endNull sql.NullTime
	err := row.Scan(
		&c.ID, &c.Name, &descNull, &c.OrganizerID, pq.Array(&c.Topics), &c.City,
		&startNull, &endNull, &c.Month, &c.MaxAttendees, &c.SeatsAvailable,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		c.Description = descNull.String
	}
	if startNull.Valid {
		c.StartDate = &startNull.Time
	}
	if endNull.Valid {
		c.EndDate = &endNull.Time
	}
	return c, nil
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (name, description, organizer_id, topics, city, start_date, end_date, month, max_attendees, seats_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Name, c.Description, c.OrganizerID, pq.Array(c.Topics), c.City,
		c.StartDate, c.EndDate, c.Month, c.MaxAttendees, c.SeatsAvailable,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE organizer_id = $1 ORDER BY name`
	return r.list(ctx, query, organizerID)
}

func (r *conferenceRepository) ListByAttendeeID(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	query := `
		SELECT ` + prefixedConferenceColumns("c") + `
		FROM conferences c
		JOIN conference_registrations cr ON cr.conference_id = c.id
		WHERE cr.profile_id = $1
		ORDER BY c.name
	`
	return r.list(ctx, query, profileID)
}

func (r *conferenceRepository) ListNearlySoldOut(ctx context.Context) ([]*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE seats_available BETWEEN 1 AND 5 ORDER BY name`
	return r.list(ctx, query)
}

// Query builds a filtered scan from a normalized query. Columns and operators
// come from the domain whitelists, never from caller input, so interpolating
// them is safe; values always go through placeholders.
func (r *conferenceRepository) Query(ctx context.Context, q domain.ConferenceQuery) ([]*domain.Conference, error) {
	var where []string
	var args []any
	n := 1
	for _, f := range q.Filters {
		if f.Column == "topics" {
			// topics is an array column; a filter matches when any element
			// satisfies the comparison.
			where = append(where, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(topics) AS topic WHERE topic %s $%d)", f.Operator, n))
		} else {
			where = append(where, fmt.Sprintf("%s %s $%d", f.Column, f.Operator, n))
		}
		args = append(args, f.Value)
		n++
	}

	query := `SELECT ` + conferenceColumns + ` FROM conferences`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// The storage engine sorts on the inequality column first; name breaks ties.
	if q.OrderBy != "" {
		query += " ORDER BY " + q.OrderBy + ", name"
	} else {
		query += " ORDER BY name"
	}
	return r.list(ctx, query, args...)
}

func (r *conferenceRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	conferences := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, c)
	}
	return conferences, rows.Err()
}

func prefixedConferenceColumns(alias string) string {
	cols := strings.Split(conferenceColumns, ", ")
	for i, col := range cols {
		cols[i] = alias + "." + col
	}
	return strings.Join(cols, ", ")
}
