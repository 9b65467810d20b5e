package security

import (
	"github.com/cockroachdb/errors"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

type EnforceSecurityOrderAudit interface {
	EnforceSecurity

	ReadOrderEvents(order models.ServiceOrder) error
	RecordOrderEvents(order models.ServiceOrder) error
}

type EnforceSecurityOrderAuditImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityOrderAuditImpl) ReadOrderEvents(order models.ServiceOrder) error {
	return e.ReadOrganization(order.OrganizationId)
}

func (e *EnforceSecurityOrderAuditImpl) RecordOrderEvents(order models.ServiceOrder) error {
	if e.Credentials.Role == models.VIEWER {
		return errors.Wrap(models.ForbiddenError, "viewers cannot record order events")
	}
	return e.ReadOrganization(order.OrganizationId)
}
