package domain

import "time"

type ConsultationStatus string

const (
	ConsultationStatusPending  ConsultationStatus = "pending"
	ConsultationStatusApproved ConsultationStatus = "approved"
	ConsultationStatusRejected ConsultationStatus = "rejected"
)

// Valid reports whether s is one of the three permitted status values.
func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusApproved, ConsultationStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s is an end state. Approved and rejected requests
// are never re-reviewed.
func (s ConsultationStatus) Terminal() bool {
	return s == ConsultationStatusApproved || s == ConsultationStatusRejected
}

// Active reports whether a request in this status blocks the same student
// from submitting another one.
func (s ConsultationStatus) Active() bool {
	return s == ConsultationStatusPending || s == ConsultationStatusApproved
}

// ConsultationRequest is a student's ask for a specific alumnus to consult on
// a research project. Created pending; the registrar approves (which emails
// the alumnus) or rejects it. Requests are never deleted.
type ConsultationRequest struct {
	ID                  string             `json:"id" firestore:"-"`
	AlumniID            string             `json:"alumniId" firestore:"alumniId"`
	AlumniName          string             `json:"alumniName" firestore:"alumniName"`
	AlumniEmail         string             `json:"alumniEmail" firestore:"alumniEmail"`
	StudentName         string             `json:"studentName" firestore:"studentName"`
	StudentEmail        string             `json:"studentEmail" firestore:"studentEmail"`
	StudentContact      string             `json:"studentContact" firestore:"studentContact"`
	ResearchTitle       string             `json:"researchTitle" firestore:"researchTitle"`
	ResearchDescription string             `json:"researchDescription" firestore:"researchDescription"`
	ConsultationNeeds   string             `json:"consultationNeeds" firestore:"consultationNeeds"`
	Status              ConsultationStatus `json:"status" firestore:"status"`
	SentToAlumni        bool               `json:"sentToAlumni" firestore:"sentToAlumni"`
	DispatchKey         string             `json:"dispatchKey,omitempty" firestore:"dispatchKey,omitempty"`
	CreatedAt           time.Time          `json:"createdAt" firestore:"createdAt"`
	UpdatedAt           *time.Time         `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// ConsultationDispatch is the audit record of a registrar-initiated
// consultation email. Written only after the send succeeded.
type ConsultationDispatch struct {
	ID                  string    `json:"id" firestore:"-"`
	AlumniID            string    `json:"alumniId" firestore:"alumniId"`
	AlumniName          string    `json:"alumniName" firestore:"alumniName"`
	AlumniEmail         string    `json:"alumniEmail" firestore:"alumniEmail"`
	StudentName         string    `json:"studentName" firestore:"studentName"`
	StudentEmail        string    `json:"studentEmail" firestore:"studentEmail"`
	StudentContact      string    `json:"studentContact" firestore:"studentContact"`
	ResearchTitle       string    `json:"researchTitle" firestore:"researchTitle"`
	ResearchDescription string    `json:"researchDescription" firestore:"researchDescription"`
	ConsultationNeeds   string    `json:"consultationNeeds" firestore:"consultationNeeds"`
	ExpectedDuration    string    `json:"expectedDuration" firestore:"expectedDuration"`
	SenderName          string    `json:"senderName" firestore:"senderName"`
	DispatchKey         string    `json:"dispatchKey" firestore:"dispatchKey"`
	Status              string    `json:"status" firestore:"status"`
	SentAt              time.Time `json:"sentAt" firestore:"sentAt"`
}

// DispatchStatusSent is the only status an audit record is ever written with.
const DispatchStatusSent = "sent"
