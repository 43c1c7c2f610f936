package postgres

import (
	"context"
	"strings"

	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"

	"gorm.io/gorm"
)

const newestFirst = "created_at DESC, id DESC"

// crudRepository implements repository.ResourceRepository for any record whose table
// has a numeric id and created_at column. E is the domain entity, M its GORM model.
type crudRepository[E any, M any] struct {
	db            *gorm.DB
	name          string   // Used in error messages.
	searchColumns []string // Columns matched by ListQuery.Search.
	toDomain      func(*M) *E
	fromDomain    func(*E) *M
}

func (repo *crudRepository[E, M]) Create(ctx context.Context, record *E) error {
	m := repo.fromDomain(record)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateWriteError(err, "failed to create "+repo.name)
	}

	// Copy back the generated id and timestamps.
	*record = *repo.toDomain(m)

	return nil
}

func (repo *crudRepository[E, M]) FindByID(ctx context.Context, id uint64) (*E, error) {
	var m M

	if err := repo.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by ID", repo.name)
	}

	return repo.toDomain(&m), nil
}

func (repo *crudRepository[E, M]) List(ctx context.Context, query repository.ListQuery) ([]*E, int64, error) {
	return repo.list(ctx, query, repo.searchColumns)
}

// list pages through the table with an optional OR-substring filter over columns.
func (repo *crudRepository[E, M]) list(ctx context.Context, query repository.ListQuery, columns []string) ([]*E, int64, error) {
	scope := searchScope(query.Search, columns)

	var total int64
	if err := repo.db.WithContext(ctx).Model(new(M)).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "failed to count %s", repo.name)
	}

	var models []*M
	if total > 0 {
		if err := repo.db.WithContext(ctx).
			Scopes(scope).
			Order(newestFirst).
			Offset(query.Offset).
			Limit(query.Limit).
			Find(&models).Error; err != nil {
			return nil, 0, errors.Wrapf(err, "failed to list %s", repo.name)
		}
	}

	records := make([]*E, 0, len(models))
	for _, m := range models {
		records = append(records, repo.toDomain(m))
	}

	return records, total, nil
}

func (repo *crudRepository[E, M]) Update(ctx context.Context, record *E) error {
	m := repo.fromDomain(record)

	// Select("*") writes zero values too; created_at keeps its stored value.
	result := repo.db.WithContext(ctx).Model(m).Select("*").Omit("created_at").Updates(m)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update "+repo.name)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	updated := repo.toDomain(m)
	*record = *updated

	return nil
}

func (repo *crudRepository[E, M]) Delete(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).Delete(new(M), id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s", repo.name)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// searchScope builds `(col1 ILIKE ? OR col2 ILIKE ?)` for a non-empty term.
func searchScope(term string, columns []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + escapeLike(term) + "%"
		conditions := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, column := range columns {
			conditions = append(conditions, column+" ILIKE ?")
			args = append(args, pattern)
		}

		return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
