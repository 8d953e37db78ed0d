package pdfexport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "onboard-tools-backend/models/db"
)

// GenerateApplicantProfile renders a one-page applicant summary.
func GenerateApplicantProfile(rec dbmodels.Applicant, history []dbmodels.ApplicantHistory) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApplicantProfile panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, rec.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	writeField(pdf, "Position", rec.JobTitle)
	writeField(pdf, "Experience", rec.Experience)
	writeField(pdf, "Email", rec.Email)
	writeField(pdf, "Phone", rec.Phone)
	writeField(pdf, "Location", locationLine(rec))
	writeField(pdf, "Applied", rec.AppliedDate.Format("02.01.2006"))
	writeField(pdf, "Status", string(rec.Status))
	if rec.Rating > 0 {
		writeField(pdf, "Rating", fmt.Sprintf("%.1f / 5", rec.Rating))
	}
	if len(rec.Skills) > 0 {
		writeField(pdf, "Skills", strings.Join(rec.Skills, ", "))
	}
	if rec.InterviewTime != "" {
		writeField(pdf, "Interview", rec.InterviewTime)
	}
	if rec.TrainingSession != "" {
		writeField(pdf, "Training session", rec.TrainingSession)
	}
	if rec.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, rec.Notes, "", "L", false)
	}

	if len(history) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Activity", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range history {
			line := fmt.Sprintf("%s  %s", item.CreatedAt.Format("02.01.2006 15:04"), item.Changes.Description)
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetY(-20)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("02.01.2006 15:04"), "", 1, "R", false, 0, "")

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 7, value, "", "L", false)
}

func locationLine(rec dbmodels.Applicant) string {
	parts := []string{}
	for _, part := range []string{rec.City, rec.Region, rec.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
