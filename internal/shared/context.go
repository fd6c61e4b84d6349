package shared

import "context"

// Permission type ids carried by a signed-in account.
const (
	PermissionAdmin  = 1
	PermissionSeller = 2
)

// Identity describes the signed-in account attached to a request.
type Identity struct {
	AccountID        int64  `json:"account_id"`
	PermissionTypeID int    `json:"permission_type_id"`
	Username         string `json:"username"`
}

// IsAdmin reports whether the identity carries master permission.
func (i Identity) IsAdmin() bool {
	return i.PermissionTypeID == PermissionAdmin
}

// IsSeller reports whether the identity belongs to a seller account.
func (i Identity) IsSeller() bool {
	return i.PermissionTypeID == PermissionSeller
}

type identityContextKey struct{}

// ContextWithIdentity stores the identity in context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the identity from context. The second return
// value is false when no identity was attached.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
