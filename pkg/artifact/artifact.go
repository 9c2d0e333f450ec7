// Package artifact stores rendered screenshots and hands back references that
// clients can use to fetch them.
//
//go:generate mockgen -package mockartifact -source=artifact.go -destination=mock/mockartifact.go *
package artifact

import (
	"context"
	"io"
	"path"
	"presell/pkg/domain"
)

// Store persists binary artifacts under a key.
type Store interface {
	// Put writes the content of r under key and returns a reference to the
	// stored object. Writing the same key twice replaces the object.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
}

// Key builds the object key of a screenshot taken for one capture invocation.
// Including the token keeps artifacts of superseded invocations apart.
func Key(subject domain.CaptureSubject, name string) string {
	return path.Join("presells", subject.PresellID.String(), subject.Token.String(), name)
}
