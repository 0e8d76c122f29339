package services

import (
	"context"

	"github.com/aaywp/portal/internal/client/api"
	"github.com/aaywp/portal/internal/client/models"
	"github.com/aaywp/portal/internal/client/session"
	"github.com/stretchr/testify/mock"
)

type apiMock struct {
	mock.Mock
	store session.Store
}

func (m *apiMock) Login(ctx context.Context, identifier, secret string) (models.LoginResponse, error) {
	args := m.Called(ctx, identifier, secret)
	return args.Get(0).(models.LoginResponse), args.Error(1)
}

func (m *apiMock) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *apiMock) Session() session.Store { return m.store }

func (m *apiMock) SubmitContactForm(ctx context.Context, p models.ContactRequest) (models.Envelope[models.Created], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Envelope[models.Created]), args.Error(1)
}

func (m *apiMock) GetDirectoryCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *apiMock) GetCommunityStrength(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *apiMock) GetMembers(ctx context.Context, q api.PageQuery) (models.Page[models.Member], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(models.Page[models.Member]), args.Error(1)
}

func (m *apiMock) GetContactMessages(ctx context.Context, q api.PageQuery) (models.Page[models.ContactMessage], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(models.Page[models.ContactMessage]), args.Error(1)
}

func (m *apiMock) GetAdminStats(ctx context.Context) (models.AdminStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.AdminStats), args.Error(1)
}

func (m *apiMock) UpdateMemberStatus(ctx context.Context, id models.ID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *apiMock) DeleteMember(ctx context.Context, id models.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *apiMock) DeleteContactMessage(ctx context.Context, id models.ID) error {
	return m.Called(ctx, id).Error(0)
}
