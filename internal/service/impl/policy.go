package impl

import "storefront-api/internal/service"

// PermissivePolicy mirrors the inherited authorization model: any
// authenticated identity may act on any user's orders. The check lives here
// so tightening it to actor.UserID == targetUserID touches one function.
type PermissivePolicy struct{}

func (PermissivePolicy) Authorize(actor *service.Claims, targetUserID uint) error {
	return nil
}

var _ service.Policy = PermissivePolicy{}
