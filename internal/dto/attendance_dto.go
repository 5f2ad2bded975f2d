package dto

// MarkAttendanceRequest punches a student in or out.
type MarkAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
}

// ScanRequest carries the decoded text from the QR/barcode collaborator.
// The code is a student display code such as "GL-2026-101".
type ScanRequest struct {
	Code string `json:"code" validate:"required"`
	Type string `json:"type" validate:"required,oneof=IN OUT"`
}

// AttendanceResultResponse mirrors the {success, message} contract the
// attendance screens render verbatim.
type AttendanceResultResponse struct {
	Recorded bool   `json:"recorded"`
	Message  string `json:"message"`
}
