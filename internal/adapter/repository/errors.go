package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lapakin/pkg/errors"
)

// databaseError wraps a Firestore failure, calling out connectivity
// problems so operators can tell them apart from plain write failures.
func databaseError(message string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Database("Document store unreachable", err)
	default:
		return errors.Database(message, err)
	}
}
