package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/utils"
)

const defaultPlanLimit = 10

// GenerateWorkoutPlan builds a plan from the user's recent logs. Plan
// generation itself never fails (it degrades to a fallback); only form
// decoding and persistence can error here.
func (h *Handler) GenerateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid form body")
		return
	}

	userID := r.FormValue("user_id")
	apiKey := r.FormValue("hf_api_key")
	if userID == "" {
		utils.Error(w, http.StatusBadRequest, "user_id is required")
		return
	}

	logs, err := h.store.ListDailyLogs(r.Context(), userID, 7)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query daily logs: "+err.Error())
		return
	}

	generated, err := h.planner.Generate(r.Context(), apiKey, logs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	plan := model.WorkoutPlan{
		PlanID:          uuid.NewString(),
		UserID:          userID,
		PlanDate:        model.Today(),
		Exercises:       generated.Exercises,
		Recommendations: generated.Recommendations,
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.store.CreateWorkoutPlan(r.Context(), &plan); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not store workout plan: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"plan_id":         plan.PlanID,
		"recommendations": plan.Recommendations,
		"exercises":       plan.Exercises,
		"model_used":      generated.Model,
		"message":         "Workout plan generated successfully",
	})
}

func (h *Handler) GetUserWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	limit := utils.QueryInt(r, "limit", defaultPlanLimit)

	plans, err := h.store.ListWorkoutPlans(r.Context(), userID, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query workout plans: "+err.Error())
		return
	}
	if plans == nil {
		plans = []model.WorkoutPlan{}
	}

	utils.Success(w, plans)
}
