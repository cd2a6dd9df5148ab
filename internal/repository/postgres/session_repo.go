package postgres

import (
	"context"
	"database/sql"
	"errors"

	"confcentral/internal/domain"
)

const sessionDetailQuery = `
	SELECT s.id, s.conference_id, s.speaker_id, s.name, s.highlights, s.type_of_session,
	       s.start_date, s.start_time, s.duration_minutes, s.created_at, s.updated_at,
	       c.name, sp.name
	FROM sessions s
	JOIN conferences c ON c.id = s.conference_id
	JOIN speakers sp ON sp.id = s.speaker_id
`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, speaker_id, name, highlights, type_of_session, start_date, start_time, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.SpeakerID, s.Name, s.Highlights, s.TypeOfSession,
		s.StartDate, s.StartTime, s.DurationMinutes, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, conference_id, speaker_id, name, highlights, type_of_session, start_date, start_time, duration_minutes, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`
	s := &domain.Session{}
	var startDateNull, startTimeNull sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.ConferenceID, &s.SpeakerID, &s.Name, &s.Highlights, &s.TypeOfSession,
		&startDateNull, &startTimeNull, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if startDateNull.Valid {
		s.StartDate = &startDateNull.Time
	}
	if startTimeNull.Valid {
		s.StartTime = &startTimeNull.Time
	}
	return s, nil
}

func (r *sessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.SessionDetail, error) {
	query := sessionDetailQuery + ` WHERE s.conference_id = $1 ORDER BY s.name`
	return r.listDetails(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.SessionDetail, error) {
	query := sessionDetailQuery + ` WHERE s.conference_id = $1 AND s.type_of_session = $2 ORDER BY s.name`
	return r.listDetails(ctx, query, conferenceID, typeOfSession)
}

func (r *sessionRepository) ListBySpeakerID(ctx context.Context, speakerID string) ([]*domain.SessionDetail, error) {
	query := sessionDetailQuery + ` WHERE s.speaker_id = $1 ORDER BY s.name`
	return r.listDetails(ctx, query, speakerID)
}

func (r *sessionRepository) ListByTypeNot(ctx context.Context, typeOfSession string) ([]*domain.SessionDetail, error) {
	query := sessionDetailQuery + ` WHERE s.type_of_session != $1 ORDER BY s.name`
	return r.listDetails(ctx, query, typeOfSession)
}

func (r *sessionRepository) ListByProfileWishlist(ctx context.Context, profileID string) ([]*domain.SessionDetail, error) {
	query := sessionDetailQuery + `
		JOIN session_wishlist w ON w.session_id = s.id
		WHERE w.profile_id = $1
		ORDER BY s.name
	`
	return r.listDetails(ctx, query, profileID)
}

func (r *sessionRepository) CountByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) (int, error) {
	query := `SELECT COUNT(*) FROM sessions WHERE conference_id = $1 AND speaker_id = $2`
	var count int
	err := r.DB.QueryRowContext(ctx, query, conferenceID, speakerID).Scan(&count)
	return count, err
}

func (r *sessionRepository) listDetails(ctx context.Context, query string, args ...any) ([]*domain.SessionDetail, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]*domain.SessionDetail, 0)
	for rows.Next() {
		s := &domain.Session{}
		d := &domain.SessionDetail{Session: s}
		var startDateNull, startTimeNull sql.NullTime
		if err := rows.Scan(
			&s.ID, &s.ConferenceID, &s.SpeakerID, &s.Name, &s.Highlights, &s.TypeOfSession,
			&startDateNull, &startTimeNull, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
			&d.ConferenceName, &d.SpeakerName,
		); err != nil {
			return nil, err
		}
		if startDateNull.Valid {
			s.StartDate = &startDateNull.Time
		}
		if startTimeNull.Valid {
			s.StartTime = &startTimeNull.Time
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
