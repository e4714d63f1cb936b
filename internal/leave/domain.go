package leave

import (
	"fmt"

	"github.com/leavedesk/leavedesk/internal/platform/httpx"
)

// DateLayout is the calendar-date format used by every leave record.
const DateLayout = "2006-01-02"

// RawRecord is an authored seed entry before the duration is derived.
type RawRecord struct {
	ServiceCode string
	IDNumber    string
	Name        string
	DoctorName  string
	JobTitle    string
	ReportDate  string
	StartDate   string
	EndDate     string
}

// Record is a leave record held by the store. IDNumber is a match key only and
// never serialised.
type Record struct {
	ServiceCode string
	IDNumber    string
	Name        string
	DoctorName  string
	JobTitle    string
	ReportDate  string
	StartDate   string
	EndDate     string
	Days        int
}

// PublicRecord is the redacted shape returned to callers.
type PublicRecord struct {
	ServiceCode string `json:"serviceCode"`
	Name        string `json:"name"`
	DoctorName  string `json:"doctorName"`
	JobTitle    string `json:"jobTitle"`
	ReportDate  string `json:"reportDate"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Days        int    `json:"days"`
}

// Public strips the identification number.
func (r Record) Public() PublicRecord {
	return PublicRecord{
		ServiceCode: r.ServiceCode,
		Name:        r.Name,
		DoctorName:  r.DoctorName,
		JobTitle:    r.JobTitle,
		ReportDate:  r.ReportDate,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Days:        r.Days,
	}
}

// LookupRequest is the inbound body of POST /api/leave.
type LookupRequest struct {
	ServiceCode  string `json:"serviceCode" validate:"required,alphanum,min=8,max=20"`
	IDNumber     string `json:"idNumber" validate:"required,len=10,number"`
	CaptchaToken string `json:"captchaToken,omitempty"`

	// RemoteIP is filled from the transport, never from the body.
	RemoteIP string `json:"-" validate:"-"`
}

// ErrNotFound is returned when no record matches a well-formed query.
var ErrNotFound = fmt.Errorf("leave record: %w", httpx.ErrNotFound)

// ValidationError reports a malformed lookup request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets the transport classify the error.
func (e *ValidationError) Is(target error) bool {
	return target == httpx.ErrValidation
}

// VerificationError reports a failed or unreachable bot check.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed: %v", e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

func (e *VerificationError) Is(target error) bool {
	return target == httpx.ErrForbidden
}
