package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/katasiddartha-lang/health-coach-ai/internal/database"
	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/utils"
)

const reportTextPreview = 500

// UploadReport accepts a multipart PDF, runs OCR extraction and stores the
// report. The file-type check happens before any extraction attempt.
func (h *Handler) UploadReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		utils.Error(w, http.StatusBadRequest, "user_id is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		utils.Error(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read uploaded file: "+err.Error())
		return
	}
	pdfBase64 := base64.StdEncoding.EncodeToString(pdfBytes)

	extracted, err := h.extractor.ExtractFromBase64(r.Context(), pdfBase64)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	report := model.HealthReport{
		ReportID:      uuid.NewString(),
		UserID:        userID,
		PDFBase64:     pdfBase64,
		ExtractedText: extracted,
		UploadDate:    time.Now().UTC(),
	}

	if err := h.store.CreateReport(r.Context(), &report); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not store report: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"report_id":      report.ReportID,
		"user_id":        report.UserID,
		"extracted_text": utils.Truncate(extracted, reportTextPreview),
		"message":        "Report uploaded successfully. Use /analyze endpoint to get AI analysis.",
	})
}

// AnalyzeReport runs the inference call and attaches the result to the
// report. The report stays untouched when analysis fails.
func (h *Handler) AnalyzeReport(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	report, err := h.store.GetReport(r.Context(), req.ReportID)
	if errors.Is(err, database.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, "Report not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not get report: "+err.Error())
		return
	}

	analysis, err := h.analyzer.Analyze(r.Context(), req.HFAPIKey, report.ExtractedText)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	params := map[string]interface{}{"model": analysis.Model}
	if err := h.store.AttachAnalysis(r.Context(), req.ReportID, analysis.Text, params); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not attach analysis: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"report_id":  req.ReportID,
		"analysis":   analysis.Text,
		"model_used": analysis.Model,
	})
}

func (h *Handler) GetUserReports(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	reports, err := h.store.ListReportsByUser(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query reports: "+err.Error())
		return
	}

	out := make([]model.HealthReport, 0, len(reports))
	for _, rep := range reports {
		rep.PDFBase64 = "" // never ship the document back in listings
		rep.ExtractedText = utils.Truncate(rep.ExtractedText, reportTextPreview)
		out = append(out, rep)
	}

	utils.Success(w, out)
}
