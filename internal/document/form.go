// Package document produces the five printed forms of a completed
// pre-arrangement. Each form is described as an ordered field map built from
// the session data, rendered to PDF, and logged to a plaintext value log so
// staff can verify what was filled.
package document

import "fmt"

// Form identifies one of the printed documents.
type Form int

const (
	FormInsuranceApplication Form = iota + 1
	FormPersonalInformation
	FormInstructions
	FormServiceAgreement
	FormJourneyHomeEnrollment
)

// Forms lists the documents in print order.
var Forms = []Form{
	FormInsuranceApplication,
	FormPersonalInformation,
	FormInstructions,
	FormServiceAgreement,
	FormJourneyHomeEnrollment,
}

var formTitles = map[Form]string{
	FormInsuranceApplication:  "Protector Plus TruStage Application form",
	FormPersonalInformation:   "Personal Information Sheet",
	FormInstructions:          "Instructions Concerning My Arrangements",
	FormServiceAgreement:      "Pre-Arranged Funeral Service Agreement",
	FormJourneyHomeEnrollment: "Journey Home Enrollment Form",
}

// Title is the document's printed title.
func (f Form) Title() string {
	return formTitles[f]
}

// OutputFileName is the file the rendered document is written to, named
// after the applicant.
func (f Form) OutputFileName(firstName, lastName string) string {
	return fmt.Sprintf("%s %s - %s.pdf", firstName, lastName, f.Title())
}
