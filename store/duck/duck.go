// Package duck keeps store definitions in an in-memory DuckDB.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	nt "zupos/entity"
)

const createTable = `
	CREATE TABLE stores (
		id INTEGER PRIMARY KEY,
		code VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		transfer_type VARCHAR NOT NULL,
		address VARCHAR,
		gsm VARCHAR,
		status BOOLEAN NOT NULL
	)`

const selectStores = `
	SELECT id, code, name, transfer_type, address, gsm, status
	FROM stores`

// Duck is the store definition data source.
type Duck struct {
	db     *sql.DB
	logger nt.Logger
	source string
}

// New opens an empty in-memory database.
// The duckdb driver must be registered by the caller.
func New(ctx context.Context, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	_, err = db.ExecContext(ctx, createTable)
	if err != nil {
		db.Close()
		err = errors.Wrapf(err, "failed to create stores table")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the seed file loaded, if any.
func (dk *Duck) Name() string {
	return dk.source
}

// Load inserts stores from a newline delimited json file.
func (dk *Duck) Load(ctx context.Context, path string) (err error) {

	insert := fmt.Sprintf(`
		INSERT INTO stores
		SELECT id, code, name, transferType, NULLIF(address, ''), NULLIF(gsm, ''), status
		FROM read_json('%s',
			columns={id: 'INTEGER', code: 'VARCHAR', name: 'VARCHAR', transferType: 'VARCHAR',
				address: 'VARCHAR', gsm: 'VARCHAR', status: 'BOOLEAN'},
			format='newline_delimited')
	`, strings.ReplaceAll(path, "'", "''"))

	result, err := dk.db.ExecContext(ctx, insert)
	if err != nil {
		err = errors.Wrapf(err, "failed to load stores from %s", path)
		return
	}

	count, _ := result.RowsAffected()
	dk.logger.Info(ctx, "loaded stores", "path", path, "count", count)

	dk.source = path
	return
}

// List returns every store by id.
func (dk *Duck) List(ctx context.Context) (stores []nt.StoreDef, err error) {

	rows, err := dk.db.QueryContext(ctx, selectStores+" ORDER BY id")
	if err != nil {
		err = errors.Wrapf(err, "failed to query stores")
		return
	}
	defer rows.Close()

	stores = []nt.StoreDef{}
	for rows.Next() {
		var sd nt.StoreDef
		sd, err = scanStore(rows)
		if err != nil {
			return
		}
		stores = append(stores, sd)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating stores")
	return
}

// Get returns the store with id.
func (dk *Duck) Get(ctx context.Context, id int) (sd nt.StoreDef, err error) {

	row := dk.db.QueryRowContext(ctx, selectStores+" WHERE id = ?", id)

	sd, err = scanStore(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = errors.Errorf("no store with id %d", id)
	}
	return
}

// Save inserts a store with a zero id under the next free id, otherwise
// updates it. Codes must be unique.
func (dk *Duck) Save(ctx context.Context, sd nt.StoreDef) (saved nt.StoreDef, err error) {

	var taken int
	err = dk.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM stores WHERE code = ? AND id <> ?", sd.Code, sd.Id).Scan(&taken)
	if err != nil {
		err = errors.Wrapf(err, "failed to check store code")
		return
	}
	if taken > 0 {
		err = errors.Errorf("code %s is already in use", sd.Code)
		return
	}

	if sd.Id == 0 {
		saved, err = dk.insert(ctx, sd)
		return
	}

	result, err := dk.db.ExecContext(ctx, `
		UPDATE stores
		SET code = ?, name = ?, transfer_type = ?, address = ?, gsm = ?, status = ?
		WHERE id = ?`,
		sd.Code, sd.Name, sd.TransferType, nullable(sd.Address), nullable(sd.Gsm), sd.Status, sd.Id)
	if err != nil {
		err = errors.Wrapf(err, "failed to update store %d", sd.Id)
		return
	}

	count, err := result.RowsAffected()
	if err != nil {
		err = errors.Wrapf(err, "failed to count updated stores")
		return
	}
	if count == 0 {
		err = errors.Errorf("no store with id %d", sd.Id)
		return
	}

	dk.logger.Info(ctx, "updated store", "id", sd.Id)
	saved = sd
	return
}

// Delete removes the store with id.
func (dk *Duck) Delete(ctx context.Context, id int) (err error) {

	result, err := dk.db.ExecContext(ctx, "DELETE FROM stores WHERE id = ?", id)
	if err != nil {
		err = errors.Wrapf(err, "failed to delete store %d", id)
		return
	}

	count, err := result.RowsAffected()
	if err != nil {
		err = errors.Wrapf(err, "failed to count deleted stores")
		return
	}
	if count == 0 {
		err = errors.Errorf("no store with id %d", id)
		return
	}

	dk.logger.Info(ctx, "deleted store", "id", id)
	return
}

// unexported

func (dk *Duck) insert(ctx context.Context, sd nt.StoreDef) (saved nt.StoreDef, err error) {

	err = dk.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM stores").Scan(&sd.Id)
	if err != nil {
		err = errors.Wrapf(err, "failed to get next store id")
		return
	}

	_, err = dk.db.ExecContext(ctx, `
		INSERT INTO stores (id, code, name, transfer_type, address, gsm, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sd.Id, sd.Code, sd.Name, sd.TransferType, nullable(sd.Address), nullable(sd.Gsm), sd.Status)
	if err != nil {
		err = errors.Wrapf(err, "failed to insert store")
		return
	}

	dk.logger.Info(ctx, "inserted store", "id", sd.Id)
	saved = sd
	return
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStore(row scanner) (sd nt.StoreDef, err error) {

	var address, gsm sql.NullString

	err = row.Scan(&sd.Id, &sd.Code, &sd.Name, &sd.TransferType, &address, &gsm, &sd.Status)
	if err != nil {
		err = errors.Wrapf(err, "failed to scan store")
		return
	}

	sd.Address = address.String
	sd.Gsm = gsm.String
	return
}

func nullable(val string) sql.NullString {
	return sql.NullString{String: val, Valid: val != ""}
}
