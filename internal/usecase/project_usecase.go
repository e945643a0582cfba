package usecase

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
	"sync"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	store    domain.DocumentStore
	validate *validator.Validate

	seedMu sync.Mutex
	seeded bool
}

// NewProjectUsecase creates the project listing usecase. store may be nil when no
// document store is configured; listings then come from fallback data.
func NewProjectUsecase(store domain.DocumentStore, validate *validator.Validate) domain.ProjectUsecase {
	if validate == nil {
		validate = validator.New()
	}
	return &projectUsecase{
		store:    store,
		validate: validate,
	}
}

// EnsureSeeded populates an empty project collection with the sample projects.
// The first attempt against a reachable, empty collection marks seeding complete
// even when individual inserts fail; it is never retried in this process.
func (uc *projectUsecase) EnsureSeeded(ctx context.Context) error {
	if uc.store == nil {
		return domain.ErrStoreUnavailable
	}

	uc.seedMu.Lock()
	defer uc.seedMu.Unlock()

	if uc.seeded {
		return nil
	}

	count, err := uc.store.CountDocuments(ctx, domain.CollectionProject, domain.Document{})
	if err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	inserted := 0
	for _, p := range domain.SampleProjects() {
		doc, err := domain.ToDocument(p)
		if err != nil {
			logger.Log.Warn("Skipping sample project", "slug", p.Slug, "error", err)
			continue
		}
		if _, err := uc.store.CreateDocument(ctx, domain.CollectionProject, doc); err != nil {
			logger.Log.Warn("Failed to seed sample project", "slug", p.Slug, "error", err)
			continue
		}
		inserted++
	}
	uc.seeded = true

	logger.Log.Info("Seeded sample projects", "inserted", inserted)
	return nil
}

func (uc *projectUsecase) ListProjects(ctx context.Context, filter domain.ProjectFilter) domain.ProjectListing {
	if uc.store == nil {
		return fallbackListing(domain.ListingUnavailable, domain.ErrStoreUnavailable)
	}

	if err := uc.EnsureSeeded(ctx); err != nil {
		return fallbackListing(domain.ListingQueryFailed, err)
	}

	query := domain.Document{}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	docs, err := uc.store.GetDocuments(ctx, domain.CollectionProject, query)
	if err != nil {
		return fallbackListing(domain.ListingQueryFailed, err)
	}

	projects := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		p, err := uc.decodeProject(doc)
		if err != nil {
			return fallbackListing(domain.ListingQueryFailed, err)
		}
		projects = append(projects, p)
	}

	return domain.ProjectListing{
		Outcome:  domain.ListingOK,
		Projects: projects,
	}
}

// decodeProject strips the store identifier and checks the record shape:
// required keys present and every field of the expected JSON type.
func (uc *projectUsecase) decodeProject(doc domain.Document) (domain.Project, error) {
	delete(doc, domain.InternalIDField)

	var shape domain.ProjectShape
	if err := domain.DecodeDocument(doc, &shape); err != nil {
		return domain.Project{}, fmt.Errorf("invalid project record: %w", err)
	}
	if err := uc.validate.Struct(shape); err != nil {
		return domain.Project{}, fmt.Errorf("invalid project record: %w", err)
	}

	var p domain.Project
	if err := domain.DecodeDocument(doc, &p); err != nil {
		return domain.Project{}, fmt.Errorf("invalid project %q: %w", p.Slug, err)
	}
	p.Normalize()
	return p, nil
}

func fallbackListing(outcome domain.ListingOutcome, err error) domain.ProjectListing {
	return domain.ProjectListing{
		Outcome:  outcome,
		Reason:   err.Error(),
		Projects: domain.FallbackProjects(),
	}
}
