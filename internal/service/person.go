package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"folkers/internal/auth"
	"folkers/internal/model"
	"folkers/internal/repo"
)

// PersonService инкапсулирует работу с записями досье.
type PersonService struct {
	repo repo.PersonRepository
}

func NewPersonService(r repo.PersonRepository) *PersonService {
	return &PersonService{repo: r}
}

// PersonInput — содержимое записи досье для создания/обновления.
type PersonInput struct {
	Name       string
	Surname    string
	Patronymic string

	Birthday        time.Time
	City            string
	IntendedAddress string

	Summary    string
	Past       string
	TraitsGood string
	TraitsBad  string

	Avatar *string
	Media  []string
}

// Create создаёт запись; автором становится вызывающий.
// Полный тёзка (фамилия+имя+отчество) даёт ErrConflict.
func (s *PersonService) Create(ctx context.Context, in PersonInput, author string) (*model.Person, error) {
	if existing, err := s.repo.GetPersonByFullName(ctx, in.Surname, in.Name, in.Patronymic); err == nil && existing != nil {
		return nil, ErrConflict
	}

	person := &model.Person{
		Name:            in.Name,
		Surname:         in.Surname,
		Patronymic:      in.Patronymic,
		Birthday:        in.Birthday,
		City:            in.City,
		IntendedAddress: in.IntendedAddress,
		Summary:         in.Summary,
		Past:            in.Past,
		TraitsGood:      in.TraitsGood,
		TraitsBad:       in.TraitsBad,
		Avatar:          in.Avatar,
		Media:           in.Media,
		Author:          author,
	}
	if person.Media == nil {
		person.Media = []string{}
	}

	return s.repo.CreatePerson(ctx, person)
}

func (s *PersonService) Get(ctx context.Context, id string) (*model.Person, error) {
	person, err := s.repo.GetPersonByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return person, nil
}

func (s *PersonService) List(ctx context.Context) ([]model.Person, error) {
	return s.repo.ListPersons(ctx)
}

func (s *PersonService) Search(ctx context.Context, query string) ([]model.Person, error) {
	return s.repo.SearchPersons(ctx, query)
}

// Update перезаписывает содержимое записи. Доступно автору записи
// либо роли не ниже admin.
func (s *PersonService) Update(ctx context.Context, id string, in PersonInput, actor auth.AuthUser) (*model.Person, error) {
	person, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.AuthorizeOwnerOrAdmin(actor, person.Author) {
		return nil, ErrForbidden
	}

	if existing, err := s.repo.GetPersonByFullName(ctx, in.Surname, in.Name, in.Patronymic); err == nil && existing != nil && existing.ID != id {
		return nil, ErrConflict
	}

	person.Name = in.Name
	person.Surname = in.Surname
	person.Patronymic = in.Patronymic
	person.Birthday = in.Birthday
	person.City = in.City
	person.IntendedAddress = in.IntendedAddress
	person.Summary = in.Summary
	person.Past = in.Past
	person.TraitsGood = in.TraitsGood
	person.TraitsBad = in.TraitsBad
	person.Avatar = in.Avatar
	person.Media = in.Media
	if person.Media == nil {
		person.Media = []string{}
	}

	if err := s.repo.SavePerson(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// Delete удаляет запись с той же проверкой владения, что и Update.
// Подпись записи, если была, намеренно остаётся осиротевшей.
func (s *PersonService) Delete(ctx context.Context, id string, actor auth.AuthUser) (*model.Person, error) {
	person, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.AuthorizeOwnerOrAdmin(actor, person.Author) {
		return nil, ErrForbidden
	}

	deleted, err := s.repo.DeletePerson(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return deleted, nil
}
