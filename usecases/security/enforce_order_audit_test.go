package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

func auditEnforcer(creds models.Credentials) *EnforceSecurityOrderAuditImpl {
	return &EnforceSecurityOrderAuditImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: creds},
		Credentials:     creds,
	}
}

func TestEnforceSecurityOrderAudit(t *testing.T) {
	orgId := "11111111-1111-1111-1111-111111111111"
	order := models.ServiceOrder{Id: "order-1", OrganizationId: orgId}

	t.Run("same organization can read and record", func(t *testing.T) {
		e := auditEnforcer(models.Credentials{OrganizationId: orgId, Role: models.TECNICO})
		assert.NoError(t, e.ReadOrderEvents(order))
		assert.NoError(t, e.RecordOrderEvents(order))
	})

	t.Run("another organization is rejected", func(t *testing.T) {
		e := auditEnforcer(models.Credentials{OrganizationId: "other-org", Role: models.ADMIN})
		assert.ErrorIs(t, e.ReadOrderEvents(order), models.ForbiddenError)
		assert.ErrorIs(t, e.RecordOrderEvents(order), models.ForbiddenError)
	})

	t.Run("viewers can read but not record", func(t *testing.T) {
		e := auditEnforcer(models.Credentials{OrganizationId: orgId, Role: models.VIEWER})
		assert.NoError(t, e.ReadOrderEvents(order))
		assert.ErrorIs(t, e.RecordOrderEvents(order), models.ForbiddenError)
	})
}
