// Package service implements the business rules between handlers and repositories.
package service

// AuthorizeOwner decides whether a caller may mutate a resource. The caller
// must match both the user ID embedded in the request path and the resource's
// recorded owner. Requiring both closes the gap where a caller supplies
// someone else's userId in the path while owning the resource, or vice versa.
func AuthorizeOwner(callerID, pathUserID, ownerID string) bool {
	if callerID == "" {
		return false
	}
	return callerID == pathUserID && callerID == ownerID
}
