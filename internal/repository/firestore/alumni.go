package firestore

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository"
)

type alumniRepository struct {
	client *firestore.Client
}

func NewAlumniRepository(client *firestore.Client) repository.AlumniRepository {
	return &alumniRepository{client: client}
}

func (r *alumniRepository) col() *firestore.CollectionRef {
	return r.client.Collection(alumniCollection)
}

func (r *alumniRepository) Create(ctx context.Context, alum *domain.Alumnus) error {
	logger.DatastoreCall("create", alumniCollection, "name", alum.Name)
	ref := r.col().NewDoc()
	if _, err := ref.Create(ctx, alum); err != nil {
		logger.DatastoreResult("create", err)
		return fmt.Errorf("failed to create alumnus: %w", err)
	}
	alum.ID = ref.ID
	logger.DatastoreResult("create", nil, "id", ref.ID)
	return nil
}

func (r *alumniRepository) GetByID(ctx context.Context, id string) (*domain.Alumnus, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NewNotFoundError("alumnus %s not found", id)
		}
		return nil, fmt.Errorf("failed to get alumnus: %w", err)
	}
	var alum domain.Alumnus
	if err := snap.DataTo(&alum); err != nil {
		return nil, fmt.Errorf("failed to decode alumnus: %w", err)
	}
	alum.ID = snap.Ref.ID
	return &alum, nil
}

func (r *alumniRepository) Update(ctx context.Context, alum *domain.Alumnus) error {
	logger.DatastoreCall("update", alumniCollection, "id", alum.ID)
	_, err := r.col().Doc(alum.ID).Set(ctx, alum)
	if err != nil {
		logger.DatastoreResult("update", err, "id", alum.ID)
		if isNotFound(err) {
			return domain.NewNotFoundError("alumnus %s not found", alum.ID)
		}
		return fmt.Errorf("failed to update alumnus: %w", err)
	}
	logger.DatastoreResult("update", nil, "id", alum.ID)
	return nil
}

func (r *alumniRepository) Delete(ctx context.Context, id string) error {
	logger.DatastoreCall("delete", alumniCollection, "id", id)
	_, err := r.col().Doc(id).Delete(ctx)
	if err != nil {
		logger.DatastoreResult("delete", err, "id", id)
		return fmt.Errorf("failed to delete alumnus: %w", err)
	}
	logger.DatastoreResult("delete", nil, "id", id)
	return nil
}

func (r *alumniRepository) ListApproved(ctx context.Context, strand string) ([]domain.Alumnus, error) {
	var q firestore.Query
	if strand != "" {
		// Two equality filters; ordering happens in memory so the query does
		// not need a composite index.
		q = r.col().
			Where("strand", "==", strand).
			Where("status", "==", string(domain.AlumnusStatusApproved))
	} else {
		q = r.col().
			Where("status", "==", string(domain.AlumnusStatusApproved)).
			OrderBy("createdAt", firestore.Desc)
	}

	alumni, err := r.readAll(ctx, q)
	if err != nil {
		return nil, err
	}
	if strand != "" {
		sortNewestFirst(alumni)
	}
	return alumni, nil
}

func (r *alumniRepository) ListPending(ctx context.Context) ([]domain.Alumnus, error) {
	q := r.col().Where("status", "==", string(domain.AlumnusStatusPending))
	alumni, err := r.readAll(ctx, q)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(alumni)
	return alumni, nil
}

func (r *alumniRepository) ExistsByNameAndStrand(ctx context.Context, name, strand string) (bool, error) {
	iter := r.col().
		Where("name", "==", name).
		Where("strand", "==", strand).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query alumni by name and strand: %w", err)
	}
	return true, nil
}

func (r *alumniRepository) readAll(ctx context.Context, q firestore.Query) ([]domain.Alumnus, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var alumni []domain.Alumnus
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list alumni: %w", err)
		}
		var alum domain.Alumnus
		if err := snap.DataTo(&alum); err != nil {
			return nil, fmt.Errorf("failed to decode alumnus: %w", err)
		}
		alum.ID = snap.Ref.ID
		alumni = append(alumni, alum)
	}
	return alumni, nil
}

func sortNewestFirst(alumni []domain.Alumnus) {
	sort.SliceStable(alumni, func(i, j int) bool {
		return alumni[i].CreatedAt.After(alumni[j].CreatedAt)
	})
}
