package impl

import (
	"context"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
)

// resourceDescriptor is everything that differs between two plain resources.
type resourceDescriptor[E, C, P any] struct {
	name     string                    // Used in error messages.
	notFound *domainerrors.BaseError   // Returned when the id does not exist.
	conflict *domainerrors.BaseError   // Returned on a unique violation; nil means internal error.
	build    func(input *C) *E         // Applies defaults to a create input.
	apply    func(record *E, input *P) // Copies the non-nil fields of a patch.

	// beforeWrite runs before Create and Update with the record about to be stored.
	// id is zero on create.
	beforeWrite func(ctx context.Context, id uint64, record *E) error
}

// resourceService implements usecase.ResourceUsecase for one resource.
type resourceService[E, C, P any] struct {
	repo       repository.ResourceRepository[E]
	desc       resourceDescriptor[E, C, P]
	pagination *config.PaginationConfig
}

func newResourceService[E, C, P any](
	repo repository.ResourceRepository[E],
	desc resourceDescriptor[E, C, P],
	cfg *config.Config,
) *resourceService[E, C, P] {
	return &resourceService[E, C, P]{
		repo:       repo,
		desc:       desc,
		pagination: cfg.Pagination,
	}
}

// Create validates uniqueness through the descriptor and stores the record with its defaults.
func (s *resourceService[E, C, P]) Create(ctx context.Context, input *C) (*E, error) {
	record := s.desc.build(input)

	if s.desc.beforeWrite != nil {
		if err := s.desc.beforeWrite(ctx, 0, record); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, s.translateWriteError(err, "failed to create "+s.desc.name)
	}

	return record, nil
}

// Get returns the record or the resource's not-found error.
func (s *resourceService[E, C, P]) Get(ctx context.Context, id uint64) (*E, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(s.desc.notFound)
		}

		return nil, errors.Wrapf(err, "failed to get %s", s.desc.name)
	}

	return record, nil
}

// List returns one page, newest first.
func (s *resourceService[E, C, P]) List(ctx context.Context, params usecase.ListParams) (*usecase.ListResult[E], error) {
	return s.page(params, func(query repository.ListQuery) ([]*E, int64, error) {
		return s.repo.List(ctx, query)
	})
}

// page normalises params, runs fetch and builds the pagination envelope.
func (s *resourceService[E, C, P]) page(
	params usecase.ListParams,
	fetch func(repository.ListQuery) ([]*E, int64, error),
) (*usecase.ListResult[E], error) {
	query, page := normalizePage(params, s.pagination)

	items, total, err := fetch(query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", s.desc.name)
	}

	return &usecase.ListResult[E]{
		Items:      items,
		Pagination: newPagination(page, query.Limit, total),
	}, nil
}

// Update applies the patch on top of the stored record and writes it back.
func (s *resourceService[E, C, P]) Update(ctx context.Context, id uint64, input *P) (*E, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.desc.apply(record, input)

	if s.desc.beforeWrite != nil {
		if err := s.desc.beforeWrite(ctx, id, record); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, record); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			// Deleted between the read and the write.
			return nil, errors.WithStack(s.desc.notFound)
		}

		return nil, s.translateWriteError(err, "failed to update "+s.desc.name)
	}

	return record, nil
}

// Delete removes the record or returns the resource's not-found error.
func (s *resourceService[E, C, P]) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return errors.WithStack(s.desc.notFound)
		}

		return errors.Wrapf(err, "failed to delete %s", s.desc.name)
	}

	return nil
}

func (s *resourceService[E, C, P]) translateWriteError(err error, message string) error {
	if errors.Is(err, repository.ErrDuplicateKey) && s.desc.conflict != nil {
		return errors.WithStack(s.desc.conflict)
	}

	return errors.Wrap(err, message)
}

// normalizePage clamps a raw page request to the configured bounds and returns the
// repository query and the effective page number.
func normalizePage(params usecase.ListParams, cfg *config.PaginationConfig) (repository.ListQuery, int) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	limit := params.Limit
	if limit < 1 {
		limit = cfg.DefaultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	return repository.ListQuery{
		Offset: (page - 1) * limit,
		Limit:  limit,
		Search: params.Search,
	}, page
}

func newPagination(page, limit int, total int64) usecase.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return usecase.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// stringOr returns value, or fallback when value is empty.
func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// assign copies *src into *dst when src is set.
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
