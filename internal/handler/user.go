package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/katasiddartha-lang/health-coach-ai/internal/database"
	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/utils"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input model.UserCreate
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user := model.User{
		UserID:    uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Age:       input.Age,
		Gender:    input.Gender,
		Height:    input.Height,
		Weight:    input.Weight,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.CreateUser(r.Context(), &user); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user: "+err.Error())
		return
	}

	utils.Success(w, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.store.GetUser(r.Context(), userID)
	if errors.Is(err, database.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not get user: "+err.Error())
		return
	}

	utils.Success(w, user)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users: "+err.Error())
		return
	}
	if users == nil {
		users = []model.User{}
	}

	utils.Success(w, users)
}
