package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// sessionKey is the fixed primary key of the single credential row. The
// session table never holds more than one row.
const sessionKey = "auth_token"

func buildUpsertCredentialQuery(credential string) (string, []any, error) {
	query, args, err := sq.
		Insert("session").
		Columns("key", "credential", "saved_at").
		Values(sessionKey, credential, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET credential = excluded.credential, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectCredentialQuery() (string, []any, error) {
	query, args, err := sq.
		Select("credential").
		From("session").
		Where(sq.Eq{"key": sessionKey}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteCredentialQuery() (string, []any, error) {
	query, args, err := sq.
		Delete("session").
		Where(sq.Eq{"key": sessionKey}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
