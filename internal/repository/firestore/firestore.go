// Package firestore implements the repository interfaces on Google Cloud
// Firestore, the system of record for alumni and consultation data.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"alumni-trace-backend/internal/repository"
)

// Collection names. The request and dispatch-log collections keep the names
// the data was migrated with.
const (
	alumniCollection    = "alumni"
	requestsCollection  = "studentConsultationRequests"
	dispatchCollection  = "consultationRequests"
	guardsCollection    = "activeRequestGuards"
)

// Store bundles the Firestore-backed repositories
type Store struct {
	Alumni       repository.AlumniRepository
	Requests     repository.ConsultationRequestRepository
	DispatchLogs repository.DispatchLogRepository

	client *firestore.Client
}

// NewStore creates repositories backed by the given Firestore client
func NewStore(client *firestore.Client) *Store {
	return &Store{
		Alumni:       NewAlumniRepository(client),
		Requests:     NewConsultationRequestRepository(client),
		DispatchLogs: NewDispatchLogRepository(client),
		client:       client,
	}
}

// Ping issues a cheap bounded read to confirm the backend is reachable and
// the credentials are valid.
func (s *Store) Ping(ctx context.Context) error {
	iter := s.client.Collection(alumniCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
