package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"folkers/internal/auth"
	"folkers/internal/model"
)

func TestPersonService_Create(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	r.On("GetPersonByFullName", mock.Anything, "Petrov", "Ivan", "Sergeevich").
		Return(nil, gorm.ErrRecordNotFound)
	r.On("CreatePerson", mock.Anything, mock.MatchedBy(func(p *model.Person) bool {
		return p.Surname == "Petrov" && p.Author == "editor1" && p.Media != nil
	})).Return(&model.Person{ID: "rec-1", Surname: "Petrov", Author: "editor1"}, nil)

	created, err := s.Create(context.Background(), PersonInput{
		Name: "Ivan", Surname: "Petrov", Patronymic: "Sergeevich",
	}, "editor1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", created.ID)
	r.AssertExpectations(t)
}

func TestPersonService_Create_FullNameConflict(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	r.On("GetPersonByFullName", mock.Anything, "Petrov", "Ivan", "Sergeevich").
		Return(&model.Person{ID: "rec-1"}, nil)

	_, err := s.Create(context.Background(), PersonInput{
		Name: "Ivan", Surname: "Petrov", Patronymic: "Sergeevich",
	}, "editor1")
	assert.ErrorIs(t, err, ErrConflict)
	r.AssertNotCalled(t, "CreatePerson", mock.Anything, mock.Anything)
}

func TestPersonService_Get_NotFound(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	r.On("GetPersonByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersonService_Update_Ownership(t *testing.T) {
	stored := &model.Person{ID: "rec-1", Surname: "Petrov", Name: "Ivan", Author: "editor1"}

	tests := []struct {
		name    string
		actor   auth.AuthUser
		wantErr error
	}{
		{"author may edit", auth.AuthUser{Username: "editor1", Role: auth.RoleEditor}, nil},
		{"admin may edit foreign", auth.AuthUser{Username: "root", Role: auth.RoleAdmin}, nil},
		{"other editor rejected", auth.AuthUser{Username: "editor2", Role: auth.RoleEditor}, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(mockPersonRepo)
			s := NewPersonService(r)

			rec := *stored
			r.On("GetPersonByID", mock.Anything, "rec-1").Return(&rec, nil)
			r.On("GetPersonByFullName", mock.Anything, "Petrov", "Ivan", "").
				Return(nil, gorm.ErrRecordNotFound)
			r.On("SavePerson", mock.Anything, mock.Anything).Return(nil)

			_, err := s.Update(context.Background(), "rec-1", PersonInput{
				Name: "Ivan", Surname: "Petrov",
			}, tt.actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				r.AssertNotCalled(t, "SavePerson", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPersonService_Update_KeepsAuthor(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	stored := &model.Person{ID: "rec-1", Surname: "Petrov", Name: "Ivan", Author: "editor1"}
	r.On("GetPersonByID", mock.Anything, "rec-1").Return(stored, nil)
	r.On("GetPersonByFullName", mock.Anything, "Petrova", "Anna", "").
		Return(nil, gorm.ErrRecordNotFound)
	r.On("SavePerson", mock.Anything, mock.MatchedBy(func(p *model.Person) bool {
		return p.Author == "editor1" && p.Surname == "Petrova"
	})).Return(nil)

	// правка администратором не присваивает ему авторство
	_, err := s.Update(context.Background(), "rec-1", PersonInput{
		Name: "Anna", Surname: "Petrova",
	}, auth.AuthUser{Username: "root", Role: auth.RoleAdmin})
	require.NoError(t, err)
	r.AssertExpectations(t)
}

func TestPersonService_Update_FullNameConflict(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	stored := &model.Person{ID: "rec-1", Surname: "Petrov", Name: "Ivan", Author: "editor1"}
	other := &model.Person{ID: "rec-2", Surname: "Sidorov", Name: "Oleg"}

	r.On("GetPersonByID", mock.Anything, "rec-1").Return(stored, nil)
	r.On("GetPersonByFullName", mock.Anything, "Sidorov", "Oleg", "").Return(other, nil)

	_, err := s.Update(context.Background(), "rec-1", PersonInput{
		Name: "Oleg", Surname: "Sidorov",
	}, auth.AuthUser{Username: "editor1", Role: auth.RoleEditor})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPersonService_Update_SameRecordNotConflict(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	stored := &model.Person{ID: "rec-1", Surname: "Petrov", Name: "Ivan", Author: "editor1"}

	// совпадение ФИО с самим собой конфликтом не считается
	r.On("GetPersonByID", mock.Anything, "rec-1").Return(stored, nil)
	r.On("GetPersonByFullName", mock.Anything, "Petrov", "Ivan", "").Return(stored, nil)
	r.On("SavePerson", mock.Anything, mock.Anything).Return(nil)

	_, err := s.Update(context.Background(), "rec-1", PersonInput{
		Name: "Ivan", Surname: "Petrov", City: "Pskov",
	}, auth.AuthUser{Username: "editor1", Role: auth.RoleEditor})
	assert.NoError(t, err)
}

func TestPersonService_Delete_Ownership(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	stored := &model.Person{ID: "rec-1", Author: "editor1"}
	r.On("GetPersonByID", mock.Anything, "rec-1").Return(stored, nil)

	_, err := s.Delete(context.Background(), "rec-1", auth.AuthUser{Username: "editor2", Role: auth.RoleEditor})
	assert.ErrorIs(t, err, ErrForbidden)
	r.AssertNotCalled(t, "DeletePerson", mock.Anything, mock.Anything)
}

func TestPersonService_Delete(t *testing.T) {
	r := new(mockPersonRepo)
	s := NewPersonService(r)

	stored := &model.Person{ID: "rec-1", Author: "editor1"}
	r.On("GetPersonByID", mock.Anything, "rec-1").Return(stored, nil)
	r.On("DeletePerson", mock.Anything, "rec-1").Return(stored, nil)

	deleted, err := s.Delete(context.Background(), "rec-1", auth.AuthUser{Username: "editor1", Role: auth.RoleEditor})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", deleted.ID)
	r.AssertExpectations(t)
}
