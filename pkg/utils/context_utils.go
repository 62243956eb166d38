package utils

import (
	"context"

	"translation-office/pkg/contextkeys"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/service"
)

func GetClaimsFromContext(ctx context.Context) (*service.JwtCustomClaim, error) {
	claims, ok := ctx.Value(contextkeys.UserClaimsKey).(*service.JwtCustomClaim)
	if !ok || claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
