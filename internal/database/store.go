package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
)

// ErrNotFound is returned when a lookup by identifier matches no record.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract the handlers depend on. The Postgres
// type implements it; tests substitute a fake.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	CreateReport(ctx context.Context, report *model.HealthReport) error
	GetReport(ctx context.Context, reportID string) (*model.HealthReport, error)
	AttachAnalysis(ctx context.Context, reportID, analysis string, params map[string]interface{}) error
	ListReportsByUser(ctx context.Context, userID string) ([]model.HealthReport, error)

	CreateDailyLog(ctx context.Context, log *model.DailyLog) error
	ListDailyLogs(ctx context.Context, userID string, limit int) ([]model.DailyLog, error)

	CreateWorkoutPlan(ctx context.Context, plan *model.WorkoutPlan) error
	ListWorkoutPlans(ctx context.Context, userID string, limit int) ([]model.WorkoutPlan, error)
}

var _ Store = (*Postgres)(nil)

const (
	maxUsersFetch   = 1000
	maxReportsFetch = 100
)

func (p *Postgres) CreateUser(ctx context.Context, user *model.User) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO users(user_id,name,email,age,gender,height,weight,created_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
		user.UserID, user.Name, user.Email, user.Age, user.Gender,
		user.Height, user.Weight, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert user: %w", err)
	}
	return nil
}

func (p *Postgres) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := p.pool.QueryRow(ctx,
		`SELECT user_id,name,email,age,gender,height,weight,created_at
		 FROM users WHERE user_id=$1`,
		userID,
	).Scan(&user.UserID, &user.Name, &user.Email, &user.Age, &user.Gender,
		&user.Height, &user.Weight, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return &user, nil
}

func (p *Postgres) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT user_id,name,email,age,gender,height,weight,created_at
		 FROM users ORDER BY created_at LIMIT $1`,
		maxUsersFetch,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Name, &u.Email, &u.Age, &u.Gender,
			&u.Height, &u.Weight, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *Postgres) CreateReport(ctx context.Context, report *model.HealthReport) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO health_reports(report_id,user_id,pdf_base64,extracted_text,ai_analysis,parameters_extracted,upload_date)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		report.ReportID, report.UserID, report.PDFBase64, report.ExtractedText,
		report.AIAnalysis, report.ParametersExtracted, report.UploadDate,
	)
	if err != nil {
		return fmt.Errorf("could not insert report: %w", err)
	}
	return nil
}

func (p *Postgres) GetReport(ctx context.Context, reportID string) (*model.HealthReport, error) {
	var r model.HealthReport
	err := p.pool.QueryRow(ctx,
		`SELECT report_id,user_id,pdf_base64,extracted_text,ai_analysis,parameters_extracted,upload_date
		 FROM health_reports WHERE report_id=$1`,
		reportID,
	).Scan(&r.ReportID, &r.UserID, &r.PDFBase64, &r.ExtractedText,
		&r.AIAnalysis, &r.ParametersExtracted, &r.UploadDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	return &r, nil
}

// AttachAnalysis is the one mutation reports ever see.
func (p *Postgres) AttachAnalysis(ctx context.Context, reportID, analysis string, params map[string]interface{}) error {
	res, err := p.pool.Exec(ctx,
		`UPDATE health_reports SET ai_analysis=$2, parameters_extracted=$3 WHERE report_id=$1`,
		reportID, analysis, params,
	)
	if err != nil {
		return fmt.Errorf("could not attach analysis: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListReportsByUser(ctx context.Context, userID string) ([]model.HealthReport, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT report_id,user_id,pdf_base64,extracted_text,ai_analysis,parameters_extracted,upload_date
		 FROM health_reports WHERE user_id=$1 ORDER BY upload_date DESC LIMIT $2`,
		userID, maxReportsFetch,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query reports: %w", err)
	}
	defer rows.Close()

	var reports []model.HealthReport
	for rows.Next() {
		var r model.HealthReport
		if err := rows.Scan(&r.ReportID, &r.UserID, &r.PDFBase64, &r.ExtractedText,
			&r.AIAnalysis, &r.ParametersExtracted, &r.UploadDate); err != nil {
			return nil, fmt.Errorf("could not scan report row: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (p *Postgres) CreateDailyLog(ctx context.Context, log *model.DailyLog) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO daily_logs(log_id,user_id,log_date,breakfast,lunch,dinner,snacks,water_intake,created_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		log.LogID, log.UserID, log.LogDate, log.Breakfast, log.Lunch,
		log.Dinner, log.Snacks, log.WaterIntake, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert daily log: %w", err)
	}
	return nil
}

func (p *Postgres) ListDailyLogs(ctx context.Context, userID string, limit int) ([]model.DailyLog, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT log_id,user_id,log_date,breakfast,lunch,dinner,snacks,water_intake,created_at
		 FROM daily_logs WHERE user_id=$1 ORDER BY log_date DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query daily logs: %w", err)
	}
	defer rows.Close()

	var logs []model.DailyLog
	for rows.Next() {
		var l model.DailyLog
		if err := rows.Scan(&l.LogID, &l.UserID, &l.LogDate, &l.Breakfast, &l.Lunch,
			&l.Dinner, &l.Snacks, &l.WaterIntake, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan daily log row: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (p *Postgres) CreateWorkoutPlan(ctx context.Context, plan *model.WorkoutPlan) error {
	ids := make([]int64, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		ids = append(ids, ex.ID)
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO workout_plans(plan_id,user_id,plan_date,exercise_ids,exercises,recommendations,created_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		plan.PlanID, plan.UserID, plan.PlanDate, ids, plan.Exercises,
		plan.Recommendations, plan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert workout plan: %w", err)
	}
	return nil
}

func (p *Postgres) ListWorkoutPlans(ctx context.Context, userID string, limit int) ([]model.WorkoutPlan, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT plan_id,user_id,plan_date,exercises,recommendations,created_at
		 FROM workout_plans WHERE user_id=$1 ORDER BY plan_date DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query workout plans: %w", err)
	}
	defer rows.Close()

	var plans []model.WorkoutPlan
	for rows.Next() {
		var wp model.WorkoutPlan
		if err := rows.Scan(&wp.PlanID, &wp.UserID, &wp.PlanDate, &wp.Exercises,
			&wp.Recommendations, &wp.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan workout plan row: %w", err)
		}
		plans = append(plans, wp)
	}
	return plans, rows.Err()
}
