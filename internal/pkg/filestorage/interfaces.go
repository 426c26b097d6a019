package filestorage

import (
	"mime/multipart"
)

// FileStorage is the opaque blob store for uploaded course content.
// Implementations return an access URL for the stored blob; the record in
// the content table only keeps that URL.
type FileStorage interface {
	// SaveFile stores an uploaded file under a subdirectory and returns
	// the URL the file can be fetched from.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file by its URL.
	DeleteFile(fileURL string) error
}
