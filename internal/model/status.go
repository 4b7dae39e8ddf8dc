package model

// ExportStatus represents the stage an export attempt has reached
type ExportStatus string

const (
	// ExportStatusPending means the export was triggered but not started
	ExportStatusPending ExportStatus = "Pending"

	// ExportStatusRequestingPermission means the pipeline waits for media access
	ExportStatusRequestingPermission ExportStatus = "RequestingPermission"

	// ExportStatusEncoding means the pipeline waits for the renderer's image data
	ExportStatusEncoding ExportStatus = "Encoding"

	// ExportStatusWriting means the PNG is being written to the documents directory
	ExportStatusWriting ExportStatus = "Writing"

	// ExportStatusRegistering means the file is being added to the gallery
	ExportStatusRegistering ExportStatus = "Registering"

	// ExportStatusCompleted means the asset is in the gallery album
	ExportStatusCompleted ExportStatus = "Completed"

	// ExportStatusDenied means the export stopped before running any side effect
	ExportStatusDenied ExportStatus = "Denied"

	// ExportStatusFailed means the export failed with an error
	ExportStatusFailed ExportStatus = "Failed"
)

// String returns the string representation of ExportStatus
func (es ExportStatus) String() string {
	return string(es)
}

// IsActive returns true if the export is still running
func (es ExportStatus) IsActive() bool {
	switch es {
	case ExportStatusRequestingPermission, ExportStatusEncoding, ExportStatusWriting, ExportStatusRegistering:
		return true
	}
	return false
}

// IsFinished returns true if the export reached a terminal state
func (es ExportStatus) IsFinished() bool {
	return es == ExportStatusCompleted || es == ExportStatusDenied || es == ExportStatusFailed
}

// PermissionStatus is the answer of the media permission authority
type PermissionStatus string

const (
	PermissionUndetermined PermissionStatus = "undetermined"
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
)

// Granted reports whether media access may be used
func (ps PermissionStatus) Granted() bool {
	return ps == PermissionGranted
}

// NoticeKind identifies the user-facing notice shown at the end of an export
type NoticeKind int

const (
	NoticeMissingReference NoticeKind = iota
	NoticePermissionDenied
	NoticeSuccess
	NoticeFailure
)

// String returns a stable name for logging
func (nk NoticeKind) String() string {
	switch nk {
	case NoticeMissingReference:
		return "missing_reference"
	case NoticePermissionDenied:
		return "permission_denied"
	case NoticeSuccess:
		return "success"
	case NoticeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// IsError reports whether the notice describes a failed export
func (nk NoticeKind) IsError() bool {
	return nk != NoticeSuccess
}
