package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folkers/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SetPublicKey(ctx context.Context, id string, publicKey *string) error {
	args := m.Called(ctx, id, publicKey)
	return args.Error(0)
}

type mockPersonRepo struct {
	mock.Mock
}

func (m *mockPersonRepo) CreatePerson(ctx context.Context, person *model.Person) (*model.Person, error) {
	args := m.Called(ctx, person)
	if p := args.Get(0); p != nil {
		return p.(*model.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonRepo) GetPersonByID(ctx context.Context, id string) (*model.Person, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonRepo) GetPersonByFullName(ctx context.Context, surname, name, patronymic string) (*model.Person, error) {
	args := m.Called(ctx, surname, name, patronymic)
	if p := args.Get(0); p != nil {
		return p.(*model.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonRepo) ListPersons(ctx context.Context) ([]model.Person, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]model.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonRepo) SearchPersons(ctx context.Context, query string) ([]model.Person, error) {
	args := m.Called(ctx, query)
	if p := args.Get(0); p != nil {
		return p.([]model.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonRepo) SavePerson(ctx context.Context, person *model.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *mockPersonRepo) DeletePerson(ctx context.Context, id string) (*model.Person, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSignatureRepo struct {
	mock.Mock
}

func (m *mockSignatureRepo) GetSignature(ctx context.Context, recordID string) (*model.Signature, error) {
	args := m.Called(ctx, recordID)
	if s := args.Get(0); s != nil {
		return s.(*model.Signature), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSignatureRepo) CreateIfAbsent(ctx context.Context, sig *model.Signature) (bool, error) {
	args := m.Called(ctx, sig)
	return args.Bool(0), args.Error(1)
}

func (m *mockSignatureRepo) DeleteSignature(ctx context.Context, recordID string) (*model.Signature, error) {
	args := m.Called(ctx, recordID)
	if s := args.Get(0); s != nil {
		return s.(*model.Signature), args.Error(1)
	}
	return nil, args.Error(1)
}
