package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folkers/internal/middleware"
	"folkers/internal/service"
)

// PersonHandler обрабатывает CRUD и поиск записей досье.
type PersonHandler struct {
	PersonService *service.PersonService
	Logger        *zap.SugaredLogger
}

func NewPersonHandler(personService *service.PersonService, logger *zap.SugaredLogger) *PersonHandler {
	return &PersonHandler{PersonService: personService, Logger: logger}
}

// PersonRequest — содержимое записи досье в теле запроса.
type PersonRequest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic"`

	Birthday        time.Time `json:"birthday"`
	City            string    `json:"city"`
	IntendedAddress string    `json:"intended_address"`

	Summary    string `json:"summary"`
	Past       string `json:"past"`
	TraitsGood string `json:"traits_good"`
	TraitsBad  string `json:"traits_bad"`

	Avatar *string  `json:"avatar,omitempty"`
	Media  []string `json:"media"`
}

func (req *PersonRequest) toInput() service.PersonInput {
	return service.PersonInput{
		Name:            req.Name,
		Surname:         req.Surname,
		Patronymic:      req.Patronymic,
		Birthday:        req.Birthday,
		City:            req.City,
		IntendedAddress: req.IntendedAddress,
		Summary:         req.Summary,
		Past:            req.Past,
		TraitsGood:      req.TraitsGood,
		TraitsBad:       req.TraitsBad,
		Avatar:          req.Avatar,
		Media:           req.Media,
	}
}

func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	persons, err := h.PersonService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "ListPersons", err)
		return
	}
	writeJSON(w, http.StatusOK, persons)
}

func (h *PersonHandler) Search(w http.ResponseWriter, r *http.Request) {
	persons, err := h.PersonService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, h.Logger, "SearchPersons", err)
		return
	}
	writeJSON(w, http.StatusOK, persons)
}

func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	person, err := h.PersonService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "GetPerson", err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Surname == "" {
		http.Error(w, "name and surname are required", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.GetUserFromContext(r.Context())

	person, err := h.PersonService.Create(r.Context(), req.toInput(), actor.Username)
	if err != nil {
		writeServiceError(w, h.Logger, "CreatePerson", err)
		return
	}

	h.Logger.Infow("person record created", "id", person.ID, "author", actor.Username)

	writeJSON(w, http.StatusOK, person)
}

// Patch перезаписывает содержимое записи. Редактор без прав admin
// может менять только собственные записи.
func (h *PersonHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.GetUserFromContext(r.Context())

	person, err := h.PersonService.Update(r.Context(), chi.URLParam(r, "id"), req.toInput(), actor)
	if err != nil {
		writeServiceError(w, h.Logger, "UpdatePerson", err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetUserFromContext(r.Context())

	person, err := h.PersonService.Delete(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		writeServiceError(w, h.Logger, "DeletePerson", err)
		return
	}

	h.Logger.Infow("person record deleted", "id", person.ID, "by", actor.Username)

	writeJSON(w, http.StatusOK, person)
}
