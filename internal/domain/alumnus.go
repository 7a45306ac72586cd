package domain

import (
	"strings"
	"time"
)

type AlumnusStatus string

const (
	AlumnusStatusPending  AlumnusStatus = "pending"
	AlumnusStatusApproved AlumnusStatus = "approved"
	AlumnusStatusRejected AlumnusStatus = "rejected"
)

// Alumnus is a graduate record. Registrations start out pending and become
// visible in the public directory once the registrar approves them.
type Alumnus struct {
	ID                 string        `json:"id" firestore:"-"`
	Name               string        `json:"name" firestore:"name"`
	Strand             string        `json:"strand" firestore:"strand"`
	CollegeCourse      string        `json:"collegeCourse" firestore:"collegeCourse"`
	CurrentOccupation  string        `json:"currentOccupation" firestore:"currentOccupation"`
	CredentialsInField string        `json:"credentialsInField" firestore:"credentialsInField"`
	Email              string        `json:"email" firestore:"email"`
	EmailVerified      bool          `json:"emailVerified" firestore:"emailVerified"`
	NeedsEmailUpdate   bool          `json:"needsEmailUpdate" firestore:"needsEmailUpdate"`
	Status             AlumnusStatus `json:"status" firestore:"status"`
	CreatedAt          time.Time     `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt" firestore:"updatedAt"`
	ReviewedAt         *time.Time    `json:"reviewedAt,omitempty" firestore:"reviewedAt,omitempty"`
	ReviewedBy         string        `json:"reviewedBy,omitempty" firestore:"reviewedBy,omitempty"`
}

// SearchText returns the lower-cased haystack the directory search matches
// against.
func (a *Alumnus) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		a.Name, a.Strand, a.CollegeCourse, a.CurrentOccupation, a.CredentialsInField,
	}, " "))
}
