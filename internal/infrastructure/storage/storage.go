package storage

import "context"

// FileStore accepts a byte payload and a filename. Used only for inline
// image uploads on system-user create/update.
type FileStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}
