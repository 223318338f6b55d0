package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when a lookup or delete targets a
	// cache entry that does not exist in the local database.
	ErrCredentialNotFound = errors.New("credential was not found in local cache")

	// ErrCredentialNotSaved is returned when an INSERT completes without
	// error but the number of affected rows is zero, indicating that no
	// entry was actually persisted.
	ErrCredentialNotSaved = errors.New("credential was not saved to local cache")

	// ErrSaltNotFound is returned when the cache database holds no
	// key-derivation salt yet, i.e. the cache has never been initialised.
	ErrSaltNotFound = errors.New("keychain salt was not found in local cache")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan cached credential row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan cached credential rows")
)
