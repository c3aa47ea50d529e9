package domain

// RequestType is the action type of a build service request.
type RequestType string

const (
	// RequestSubmit asks to submit a package into a target project.
	RequestSubmit RequestType = "submit"
	// RequestDelete asks to delete a package from a target project.
	RequestDelete RequestType = "delete"
)

// RequestID identifies a request on the build service.
type RequestID string

// PendingRequest is an open request targeting a package.
type PendingRequest struct {
	ID     RequestID
	Type   RequestType
	State  string
	Target PackageRef
}

// DeleteRequest describes a deletion request to be submitted.
type DeleteRequest struct {
	// APIURL is the build service the request is filed against.
	APIURL  string
	Target  PackageRef
	Message string
	// DryRun logs the request instead of filing it.
	DryRun bool
}
