package domain

import "fmt"

// Domain error mapper: translates an internal failure plus context into
// the structured error the caller sees. Services never hand a raw
// storage error to the transport layer; they go through these.

// NotFoundByID reports a missing entity looked up by id.
func NotFoundByID(entity string, id int64) *Error {
	return NewError(NotFound, fmt.Sprintf("%s with id %d not found", entity, id))
}

// NotFoundByName reports a missing entity looked up by name.
func NotFoundByName(entity, name string) *Error {
	return NewError(NotFound, fmt.Sprintf("%s with name %q not found", entity, name))
}

// NotLoaded replaces any storage read failure. The original error is
// swallowed; only the entity-specific message leaves the service layer.
func NotLoaded(what string) *Error {
	return NewError(Internal, what+" could not be loaded")
}

// NotSaved replaces an unclassified storage write failure.
func NotSaved(entity string) *Error {
	return NewError(Internal, entity+" could not be saved")
}

// NotDeleted replaces a storage delete failure.
func NotDeleted(entity string) *Error {
	return NewError(Internal, entity+" could not be deleted")
}

// FieldTaken reports a single-column uniqueness violation.
func FieldTaken(entity, field string) *Error {
	return NewError(UnprocessableEntity, fmt.Sprintf("%s %s already exists", entity, field))
}

// LocationTaken reports a (latitude, longitude) pair collision. The
// message names both coordinates.
func LocationTaken(latitude, longitude string) *Error {
	return NewError(UnprocessableEntity, fmt.Sprintf("location (%s, %s) already exists", latitude, longitude))
}

// ReferenceMissing reports a foreign reference that does not resolve to
// a stored row.
func ReferenceMissing(entity string, id int64) *Error {
	return NewError(UnprocessableEntity, fmt.Sprintf("%s with id %d does not exist", entity, id))
}

// duplicateColumns maps a violated unique column to the field named in
// the user-facing message. "location" is handled by the caller because
// its message carries the coordinate pair.
var duplicateColumns = map[string]string{
	"name":     "name",
	"address":  "address",
	"picture":  "picture",
	"logo":     "logo",
	"color":    "color",
	"username": "username",
	"email":    "email",
}

// DuplicateMessage maps a recognized unique-constraint column to its
// structured error for the given entity. Unrecognized columns return
// false so callers fall through to an internal error.
func DuplicateMessage(entity, column string) (*Error, bool) {
	field, ok := duplicateColumns[column]
	if !ok {
		return nil, false
	}
	return FieldTaken(entity, field), true
}

// referenceColumns maps a violated foreign-key column to the entity
// named in the user-facing message.
var referenceColumns = map[string]string{
	"city_id": "city",
	"type_id": "type",
	"tag_id":  "tag",
	"role_id": "role",
	"user_id": "user",
}

// ReferenceMessage maps a recognized foreign-key column to its
// structured error.
func ReferenceMessage(column string) (*Error, bool) {
	entity, ok := referenceColumns[column]
	if !ok {
		return nil, false
	}
	return NewError(UnprocessableEntity, entity+" does not exist"), true
}
