package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/locale"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Compile-time check that Loader implements loader.Loader interface
var _ loader.Loader = (*Loader)(nil)

// DefaultBundleTable is the table NewLoader reads when none is given.
const DefaultBundleTable = "l10n_bundles"

// Schema creates the default bundle table. The root locale is stored as an
// empty string.
const Schema = `CREATE TABLE IF NOT EXISTS l10n_bundles (
	origin     TEXT NOT NULL DEFAULT '',
	base_name  TEXT NOT NULL,
	locale     TEXT NOT NULL DEFAULT '',
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (origin, base_name, locale)
)`

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Loader reads one jsonb document per (origin, base name, locale) row.
// Options.Format is ignored: jsonb payloads are always JSON.
// Loads are shared by every caller, so queries always run on db and never on
// a transaction owned by the request that triggered the load.
type Loader struct {
	db    Querier
	query string
}

// NewLoader creates a Loader over table, or DefaultBundleTable when empty.
func NewLoader(db Querier, table string) (*Loader, error) {
	if db == nil {
		return nil, ErrNilQuerier
	}
	if table == "" {
		table = DefaultBundleTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	return &Loader{
		db:    db,
		query: "SELECT payload FROM " + table + " WHERE origin = $1 AND base_name = $2 AND locale = $3",
	}, nil
}

// Name implements loader.Loader.
func (l *Loader) Name() string {
	return "pg"
}

// TryLoad implements loader.Loader. A missing row is loader.ErrNotFound.
func (l *Loader) TryLoad(ctx context.Context, _ loader.Options, id resource.Identity, tag language.Tag) (*loader.Map, error) {
	var payload []byte
	err := l.db.QueryRow(ctx, l.query, string(id.Origin), id.BaseName, locale.Suffix(tag)).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s at %s", loader.ErrNotFound, id.Ref(), tag)
	}
	if err != nil {
		return nil, fmt.Errorf("query bundle %s at %s: %w", id.Ref(), tag, err)
	}

	return loader.JSON.Parse(payload)
}
