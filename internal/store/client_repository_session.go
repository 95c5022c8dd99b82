package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haneefojay/flashai-client/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveCredential(ctx context.Context, credential string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCredentialQuery(credential)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveCredential").
			Msg("failed to execute upsert for session credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sessionRepository) GetCredential(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialQuery()
	if err != nil {
		return "", err
	}

	var credential string
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&credential); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrCredentialNotFound
		}
		log.Err(err).
			Str("func", "sessionRepository.GetCredential").
			Msg("failed to scan session credential row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, nil
}

func (s *sessionRepository) DeleteCredential(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery()
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteCredential").
			Msg("failed to execute delete for session credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
