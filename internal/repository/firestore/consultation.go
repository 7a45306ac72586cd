package firestore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"alumni-trace-backend/internal/domain"
	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/repository"
)

type consultationRequestRepository struct {
	client *firestore.Client
}

func NewConsultationRequestRepository(client *firestore.Client) repository.ConsultationRequestRepository {
	return &consultationRequestRepository{client: client}
}

func (r *consultationRequestRepository) col() *firestore.CollectionRef {
	return r.client.Collection(requestsCollection)
}

// activeGuard is the document that makes the one-active-request-per-student
// invariant a store-enforced constraint instead of a racy pre-check. Keyed by
// the normalized student email; created in the same transaction as the
// request and deleted when the request is rejected.
type activeGuard struct {
	RequestID    string    `firestore:"requestId"`
	StudentEmail string    `firestore:"studentEmail"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

func guardKey(studentEmail string) string {
	return strings.ToLower(strings.TrimSpace(studentEmail))
}

func (r *consultationRequestRepository) CreateIfNoActive(ctx context.Context, req *domain.ConsultationRequest) error {
	logger.DatastoreCall("createIfNoActive", requestsCollection, "studentEmail", req.StudentEmail)

	guardRef := r.client.Collection(guardsCollection).Doc(guardKey(req.StudentEmail))
	docRef := r.col().NewDoc()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(guardRef)
		if err == nil {
			return domain.NewConflictError(domain.CodeActiveRequestExists,
				"You already have an active consultation request pending. Please wait for a response before submitting another request.")
		}
		if !isNotFound(err) {
			return fmt.Errorf("failed to read active-request guard: %w", err)
		}

		if err := tx.Create(docRef, req); err != nil {
			return fmt.Errorf("failed to create consultation request: %w", err)
		}
		return tx.Create(guardRef, activeGuard{
			RequestID:    docRef.ID,
			StudentEmail: req.StudentEmail,
			CreatedAt:    req.CreatedAt,
		})
	})
	if err != nil {
		logger.DatastoreResult("createIfNoActive", err)
		return err
	}

	req.ID = docRef.ID
	logger.DatastoreResult("createIfNoActive", nil, "id", docRef.ID)
	return nil
}

func (r *consultationRequestRepository) GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NewNotFoundError("consultation request %s not found", id)
		}
		return nil, fmt.Errorf("failed to get consultation request: %w", err)
	}
	var req domain.ConsultationRequest
	if err := snap.DataTo(&req); err != nil {
		return nil, fmt.Errorf("failed to decode consultation request: %w", err)
	}
	req.ID = snap.Ref.ID
	return &req, nil
}

func (r *consultationRequestRepository) SetDispatchKey(ctx context.Context, id, key string) error {
	logger.DatastoreCall("setDispatchKey", requestsCollection, "id", id)
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "dispatchKey", Value: key},
	})
	if err != nil {
		logger.DatastoreResult("setDispatchKey", err, "id", id)
		if isNotFound(err) {
			return domain.NewNotFoundError("consultation request %s not found", id)
		}
		return fmt.Errorf("failed to set dispatch key: %w", err)
	}
	logger.DatastoreResult("setDispatchKey", nil, "id", id)
	return nil
}

func (r *consultationRequestRepository) CommitDecision(ctx context.Context, req *domain.ConsultationRequest) error {
	logger.DatastoreCall("commitDecision", requestsCollection, "id", req.ID, "status", req.Status)

	reqRef := r.col().Doc(req.ID)
	guardRef := r.client.Collection(guardsCollection).Doc(guardKey(req.StudentEmail))

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		updates := []firestore.Update{
			{Path: "status", Value: string(req.Status)},
			{Path: "updatedAt", Value: req.UpdatedAt},
			{Path: "sentToAlumni", Value: req.SentToAlumni},
		}
		if err := tx.Update(reqRef, updates); err != nil {
			return fmt.Errorf("failed to update consultation request: %w", err)
		}
		// A rejection frees the student to submit again; an approval keeps
		// the request active per the duplicate-submission rule.
		if req.Status == domain.ConsultationStatusRejected {
			return tx.Delete(guardRef)
		}
		return nil
	})
	if err != nil {
		logger.DatastoreResult("commitDecision", err, "id", req.ID)
		if isNotFound(err) {
			return domain.NewNotFoundError("consultation request %s not found", req.ID)
		}
		return err
	}
	logger.DatastoreResult("commitDecision", nil, "id", req.ID)
	return nil
}

func (r *consultationRequestRepository) List(ctx context.Context, filter repository.ConsultationFilter) ([]domain.ConsultationRequest, error) {
	q := r.col().Query
	if filter.AlumniID != "" {
		q = q.Where("alumniId", "==", filter.AlumniID)
	}
	q = q.OrderBy("createdAt", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var requests []domain.ConsultationRequest
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list consultation requests: %w", err)
		}
		var req domain.ConsultationRequest
		if err := snap.DataTo(&req); err != nil {
			return nil, fmt.Errorf("failed to decode consultation request: %w", err)
		}
		req.ID = snap.Ref.ID

		// Status is narrowed in memory so the query needs no composite index.
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		requests = append(requests, req)
		if filter.Limit > 0 && len(requests) >= filter.Limit {
			break
		}
	}
	return requests, nil
}

func (r *consultationRequestRepository) ListPendingOlderThanDays(ctx context.Context, days int) ([]domain.ConsultationRequest, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	iter := r.col().Where("status", "==", string(domain.ConsultationStatusPending)).Documents(ctx)
	defer iter.Stop()

	var stale []domain.ConsultationRequest
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list pending consultation requests: %w", err)
		}
		var req domain.ConsultationRequest
		if err := snap.DataTo(&req); err != nil {
			return nil, fmt.Errorf("failed to decode consultation request: %w", err)
		}
		req.ID = snap.Ref.ID
		if req.CreatedAt.Before(cutoff) {
			stale = append(stale, req)
		}
	}
	sort.SliceStable(stale, func(i, j int) bool {
		return stale[i].CreatedAt.Before(stale[j].CreatedAt)
	})
	return stale, nil
}
