package document

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("not a valid ObjectID")

type Document interface {
	GetID() primitive.ObjectID
}

// ParseID converts a 24 character hex id. Any malformed input, including
// wrong length and non-hex characters, yields ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return objectID, nil
}
