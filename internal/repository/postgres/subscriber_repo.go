package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

type subscriberRepo struct {
	db *sqlx.DB
}

// NewSubscriberRepo creates a new PostgreSQL-backed SubscriberRepository.
func NewSubscriberRepo(db *sqlx.DB) port.SubscriberRepository {
	return &subscriberRepo{db: db}
}

func (r *subscriberRepo) Create(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscribers (id, email, status, subscribed_at, unsubscribed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Email, sub.Status, sub.SubscribedAt, sub.UnsubscribedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrAlreadySubscribed
		}
		return fmt.Errorf("subscriberRepo.Create: %w", err)
	}
	return nil
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	var sub domain.NewsletterSubscriber
	err := r.db.GetContext(ctx, &sub,
		"SELECT * FROM newsletter_subscribers WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("subscriberRepo.GetByEmail: %w", err)
	}
	return &sub, nil
}

func (r *subscriberRepo) UpdateStatus(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE newsletter_subscribers SET status = $1, subscribed_at = $2, unsubscribed_at = $3
		 WHERE id = $4`,
		sub.Status, sub.SubscribedAt, sub.UnsubscribedAt, sub.ID)
	if err != nil {
		return fmt.Errorf("subscriberRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSubscriberNotFound
	}
	return nil
}
