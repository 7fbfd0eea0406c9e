package schemaobj

import "github.com/google/uuid"

// ObjectID is the stable identity of a schema object, independent of its
// name. Names may be rewritten (see RenameObject); the ObjectID never
// changes for the lifetime of the object.
type ObjectID struct {
	uuid uuid.UUID
}

// NewObjectID mints a fresh, globally unique ObjectID.
func NewObjectID() ObjectID {
	return ObjectID{uuid: uuid.New()}
}

// String returns the canonical string form of the id.
func (id ObjectID) String() string {
	return id.uuid.String()
}

// IsZero reports whether id is the zero value (never minted).
func (id ObjectID) IsZero() bool {
	return id.uuid == uuid.Nil
}
