package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"folkers/internal/model"
)

const searchLimit = 25

// PersonRepository — контракт доступа к записям досье.
type PersonRepository interface {
	CreatePerson(ctx context.Context, person *model.Person) (*model.Person, error)
	GetPersonByID(ctx context.Context, id string) (*model.Person, error)
	// GetPersonByFullName ищет точное совпадение ФИО (уникальный индекс)
	GetPersonByFullName(ctx context.Context, surname, name, patronymic string) (*model.Person, error)
	ListPersons(ctx context.Context) ([]model.Person, error)
	SearchPersons(ctx context.Context, query string) ([]model.Person, error)
	// SavePerson перезаписывает запись целиком (PATCH выполняется
	// на уровне сервиса поверх прочитанной записи)
	SavePerson(ctx context.Context, person *model.Person) error
	DeletePerson(ctx context.Context, id string) (*model.Person, error)
}

type personRepo struct {
	db *gorm.DB
}

// NewPersonRepository создаёт реализацию репозитория для Person.
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) CreatePerson(ctx context.Context, person *model.Person) (*model.Person, error) {
	if person.ID == "" {
		person.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

func (r *personRepo) GetPersonByID(ctx context.Context, id string) (*model.Person, error) {
	var person model.Person
	if err := r.db.WithContext(ctx).First(&person, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) GetPersonByFullName(ctx context.Context, surname, name, patronymic string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		First(&person, "surname = ? AND name = ? AND patronymic = ?", surname, name, patronymic).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) ListPersons(ctx context.Context) ([]model.Person, error) {
	var persons []model.Person
	err := r.db.WithContext(ctx).
		Order("surname, name, patronymic").
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

// SearchPersons ищет по подстроке в ФИО без учёта регистра.
// Запрос сопоставляется с отдельными частями имени, со склейками
// ФИО в разном порядке слов, а для запросов из двух и трёх слов —
// со всеми расстановками слов по фамилии/имени/отчеству.
func (r *personRepo) SearchPersons(ctx context.Context, query string) ([]model.Person, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Person{}, nil
	}

	db := r.db.WithContext(ctx)
	like := "%" + q + "%"

	cond := db.
		Where("lower(surname) LIKE ?", like).
		Or("lower(name) LIKE ?", like).
		Or("lower(patronymic) LIKE ?", like).
		Or("lower(surname || ' ' || name || ' ' || patronymic) LIKE ?", like).
		Or("lower(name || ' ' || patronymic || ' ' || surname) LIKE ?", like).
		Or("lower(patronymic || ' ' || name || ' ' || surname) LIKE ?", like).
		Or("lower(surname || ' ' || patronymic || ' ' || name) LIKE ?", like)

	words := strings.Fields(q)
	if len(words) >= 2 {
		w0, w1 := "%"+words[0]+"%", "%"+words[1]+"%"
		cond = cond.
			Or("lower(surname) LIKE ? AND lower(name) LIKE ?", w0, w1).
			Or("lower(surname) LIKE ? AND lower(name) LIKE ?", w1, w0).
			Or("lower(name) LIKE ? AND lower(patronymic) LIKE ?", w0, w1).
			Or("lower(name) LIKE ? AND lower(patronymic) LIKE ?", w1, w0)
	}
	if len(words) == 3 {
		perms := [][3]string{
			{words[0], words[1], words[2]},
			{words[0], words[2], words[1]},
			{words[1], words[0], words[2]},
			{words[1], words[2], words[0]},
			{words[2], words[0], words[1]},
			{words[2], words[1], words[0]},
		}
		for _, p := range perms {
			cond = cond.Or(
				"lower(surname) LIKE ? AND lower(name) LIKE ? AND lower(patronymic) LIKE ?",
				"%"+p[0]+"%", "%"+p[1]+"%", "%"+p[2]+"%",
			)
		}
	}

	var persons []model.Person
	err := db.
		Where(cond).
		Order("surname, name, patronymic").
		Limit(searchLimit).
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *personRepo) SavePerson(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *personRepo) DeletePerson(ctx context.Context, id string) (*model.Person, error) {
	person, err := r.GetPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Person{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return person, nil
}
