package report

import (
	"bytes"
	"fmt"

	"healthassist/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// Render lays out the patient profile and prediction result as an A4
// PDF document: title, patient details, prediction result, disclaimer.
func Render(profile *models.UserProfile, result models.PredictionResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "AI Healthcare Assistant Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Patient Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	writeLines(pdf, []string{
		fmt.Sprintf("Name: %s %s", profile.FirstName, profile.LastName),
		fmt.Sprintf("DOB: %s", profile.DateOfBirth),
		fmt.Sprintf("Age: %d", profile.Age),
		fmt.Sprintf("Gender: %s", profile.Gender),
		fmt.Sprintf("Mobile: %s", profile.Mobile),
		fmt.Sprintf("Email: %s", profile.Email),
	})
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Prediction Result", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	writeLines(pdf, []string{
		fmt.Sprintf("Condition: %s", result.Condition),
		fmt.Sprintf("Severity: %s", result.Severity),
		fmt.Sprintf("Doctor: %s", result.Doctor),
		fmt.Sprintf("Medicine: %s", result.Medicine),
		fmt.Sprintf("Advice: %s", result.Advice),
	})
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Disclaimer: This is not a medical diagnosis.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLines(pdf *gofpdf.Fpdf, lines []string) {
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
}
