package order

import (
	"time"

	"marketplace/internal/pkg/errs"
)

// Deliverable is a file the seller attached to an order. Deliverables are
// append-only. The core stores only the file reference; upload handling and
// content validation are external concerns.
type Deliverable struct {
	fileName   string
	fileURL    string
	uploadedAt time.Time
}

// newDeliverable creates a deliverable after the aggregate has verified the
// actor is the order's seller.
func newDeliverable(fileName, fileURL string, uploadedAt time.Time) (Deliverable, error) {
	if fileName == "" {
		return Deliverable{}, errs.NewValueIsRequiredError("fileName")
	}
	if fileURL == "" {
		return Deliverable{}, errs.NewValueIsRequiredError("fileUrl")
	}
	if uploadedAt.IsZero() {
		return Deliverable{}, errs.NewValueIsRequiredError("uploadedAt")
	}

	return Deliverable{fileName: fileName, fileURL: fileURL, uploadedAt: uploadedAt}, nil
}

// RestoreDeliverable reconstructs a deliverable from persistent storage.
func RestoreDeliverable(fileName, fileURL string, uploadedAt time.Time) (Deliverable, error) {
	return newDeliverable(fileName, fileURL, uploadedAt)
}

// FileName returns the deliverable's display name.
func (d Deliverable) FileName() string {
	return d.fileName
}

// FileURL returns the location of the uploaded file.
func (d Deliverable) FileURL() string {
	return d.fileURL
}

// UploadedAt returns the server-assigned timestamp.
func (d Deliverable) UploadedAt() time.Time {
	return d.uploadedAt
}
