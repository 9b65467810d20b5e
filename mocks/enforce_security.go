package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (m *EnforceSecurity) ReadOrganization(organizationId string) error {
	args := m.Called(organizationId)
	return args.Error(0)
}

func (m *EnforceSecurity) ReadOrderEvents(order models.ServiceOrder) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *EnforceSecurity) RecordOrderEvents(order models.ServiceOrder) error {
	args := m.Called(order)
	return args.Error(0)
}
