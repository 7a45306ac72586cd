package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository"
)

type dispatchLogRepository struct {
	client *firestore.Client
}

func NewDispatchLogRepository(client *firestore.Client) repository.DispatchLogRepository {
	return &dispatchLogRepository{client: client}
}

func (r *dispatchLogRepository) col() *firestore.CollectionRef {
	return r.client.Collection(dispatchCollection)
}

func (r *dispatchLogRepository) Create(ctx context.Context, d *domain.ConsultationDispatch) error {
	logger.DatastoreCall("create", dispatchCollection, "alumniId", d.AlumniID)
	ref := r.col().NewDoc()
	if _, err := ref.Create(ctx, d); err != nil {
		logger.DatastoreResult("create", err)
		return fmt.Errorf("failed to create dispatch record: %w", err)
	}
	d.ID = ref.ID
	logger.DatastoreResult("create", nil, "id", ref.ID)
	return nil
}

func (r *dispatchLogRepository) List(ctx context.Context, alumniID string, limit int) ([]domain.ConsultationDispatch, error) {
	q := r.col().Query
	if alumniID != "" {
		q = q.Where("alumniId", "==", alumniID)
	}
	q = q.OrderBy("sentAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var dispatches []domain.ConsultationDispatch
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list dispatch records: %w", err)
		}
		var d domain.ConsultationDispatch
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode dispatch record: %w", err)
		}
		d.ID = snap.Ref.ID
		dispatches = append(dispatches, d)
	}
	return dispatches, nil
}
