package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/monitoring"
)

const (
	SheetSummary    = "Summary"
	SheetQuiz       = "Quiz"
	SheetAssessment = "Assessment"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportExport is a rendered report ready to be sent as a download
type ReportExport struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportReport renders the same report GetReport returns as an XLSX workbook
func (s *reportService) ExportReport(ctx context.Context, studentID uint, achievementID *uint) (*ReportExport, error) {
	report, err := s.assemble(ctx, studentID, achievementID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		if achievementID != nil {
			return nil, NewNotFoundError("achievement", *achievementID)
		}
		return nil, NewNotFoundError("report for student", studentID)
	}

	data, err := renderReportWorkbook(report)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	monitoring.ReportsAssembled.WithLabelValues("xlsx").Inc()
	s.logger.Info("Report exported", "student_id", studentID, "achievement_id", report.Achievement.ID, "bytes", len(data))

	return &ReportExport{
		Filename:    fmt.Sprintf("achievement-report-%d-%d.xlsx", studentID, report.Achievement.ID),
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}

func renderReportWorkbook(report *models.AchievementReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	a := report.Achievement
	timeSpent := "-"
	if a.TimeSpentMinutes != nil {
		timeSpent = fmt.Sprintf("%d", *a.TimeSpentMinutes)
	}

	summary := [][]interface{}{
		{"Achievement Report"},
		{},
		{"Student", report.Student.Name},
		{"Email", report.Student.Email},
		{"Grade", report.Student.Grade},
		{"Completed", a.CompletionDate.Format(time.RFC3339)},
		{"Time spent (minutes)", timeSpent},
		{"Performance level", string(a.PerformanceLevel)},
		{},
		{"", "Questions", "Correct", "Score %"},
		{"Quiz", report.QuizDetails.TotalQuestions, report.QuizDetails.CorrectAnswers, report.QuizDetails.ScorePercentage},
		{"Assessment", report.AssessmentDetails.TotalQuestions, report.AssessmentDetails.CorrectAnswers, report.AssessmentDetails.ScorePercentage},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "A1", bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetSummary, "A10", "D10", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 24); err != nil {
		return nil, err
	}

	for _, sheet := range []struct {
		name    string
		details models.AttemptDetails
	}{
		{SheetQuiz, report.QuizDetails},
		{SheetAssessment, report.AssessmentDetails},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		rows := [][]interface{}{{"#", "Question ID", "Selected", "Correct", "Answered at"}}
		for i, attempt := range sheet.details.QuestionsAttempted {
			rows = append(rows, []interface{}{
				i + 1,
				attempt.QuestionID,
				string(attempt.SelectedAnswer),
				yesNo(attempt.IsCorrect),
				attempt.CreatedAt.Format(time.RFC3339),
			})
		}
		if err := writeRows(f, sheet.name, rows); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet.name, "A1", "E1", bold); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
