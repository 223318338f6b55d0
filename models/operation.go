package models

// Operation is a capability a principal may exercise on a credential.
// The underlying value is the lowercase wire token.
type Operation string

const (
	// OperationRead allows retrieving the credential value.
	OperationRead Operation = "read"

	// OperationWrite allows creating or updating the credential value.
	OperationWrite Operation = "write"

	// OperationDelete allows removing the credential.
	OperationDelete Operation = "delete"

	// OperationReadACL allows retrieving the permissions attached to the
	// credential.
	OperationReadACL Operation = "read_acl"

	// OperationWriteACL allows modifying the permissions attached to the
	// credential.
	OperationWriteACL Operation = "write_acl"
)

// Operation returns the lowercase token sent to the server.
func (o Operation) Operation() string {
	return string(o)
}
