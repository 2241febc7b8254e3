package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/utils"
)

const defaultLogLimit = 30

func (h *Handler) CreateDailyLog(w http.ResponseWriter, r *http.Request) {
	var input model.DailyLogCreate
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	logDate, err := model.ParseDate(input.LogDate)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log := model.DailyLog{
		LogID:       uuid.NewString(),
		UserID:      input.UserID,
		LogDate:     logDate,
		Breakfast:   emptyIfNil(input.Breakfast),
		Lunch:       emptyIfNil(input.Lunch),
		Dinner:      emptyIfNil(input.Dinner),
		Snacks:      emptyIfNil(input.Snacks),
		WaterIntake: input.WaterIntake,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.store.CreateDailyLog(r.Context(), &log); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create daily log: "+err.Error())
		return
	}

	utils.Success(w, log)
}

func (h *Handler) GetUserDailyLogs(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	limit := utils.QueryInt(r, "limit", defaultLogLimit)

	logs, err := h.store.ListDailyLogs(r.Context(), userID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query daily logs: "+err.Error())
		return
	}
	if logs == nil {
		logs = []model.DailyLog{}
	}

	utils.Success(w, logs)
}

func emptyIfNil(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}
