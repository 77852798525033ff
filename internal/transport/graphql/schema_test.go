package graphql

import (
	"context"
	"testing"

	gographql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityguide/internal/auth"
	"cityguide/internal/domain"
)

// The schema and the resolver method set are checked against each
// other at parse time, so parsing alone catches any drift between the
// two.
func TestSchemaParses(t *testing.T) {
	_, err := gographql.ParseSchema(Schema, &Resolver{})
	require.NoError(t, err)
}

func TestRequireAuth(t *testing.T) {
	_, err := requireAuth(context.Background())
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.Unauthorized, de.Kind)

	ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{UserID: 1})
	claims, err := requireAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestRequireRole(t *testing.T) {
	userCtx := auth.ContextWithClaims(context.Background(), &auth.Claims{
		UserID: 1,
		Roles:  []string{domain.RoleUser},
	})
	_, err := requireRole(userCtx, domain.RoleSuperAdmin)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.Forbidden, de.Kind)

	adminCtx := auth.ContextWithClaims(context.Background(), &auth.Claims{
		UserID: 2,
		Roles:  []string{domain.RoleUser, domain.RoleSuperAdmin},
	})
	claims, err := requireRole(adminCtx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
}
