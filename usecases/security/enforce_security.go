package security

import (
	"github.com/cockroachdb/errors"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

type EnforceSecurity interface {
	ReadOrganization(organizationId string) error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) ReadOrganization(organizationId string) error {
	if e.Credentials.OrganizationId != organizationId {
		return errors.Wrap(models.ForbiddenError,
			"credentials organization does not match the resource organization")
	}
	return nil
}
