package client

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Essay length bounds enforced by the API
const (
	EssayMinLength = 100
	EssayMaxLength = 5000
)

// Wizard walks an applicant through the four form steps: personal details,
// school, payment proof, essay. Next refuses to advance while the current
// step is incomplete, Back always works.
type Wizard struct {
	client *Client
	step   int
	form   Submission
}

// ErrStepIncomplete is returned by Next while required fields of the
// current step are missing or invalid
var ErrStepIncomplete = errors.New("current step is incomplete")

// ErrNotOnFinalStep is returned by Submit before the essay step
var ErrNotOnFinalStep = errors.New("submission only allowed on the final step")

// NewWizard creates a wizard submitting through c
func NewWizard(c *Client) *Wizard {
	return &Wizard{client: c, step: 1}
}

// Step returns the current step, 1 through 4
func (w *Wizard) Step() int {
	return w.step
}

// Form returns a copy of the collected form data
func (w *Wizard) Form() Submission {
	return w.form
}

// SetPersonalInfo fills the first step
func (w *Wizard) SetPersonalInfo(name, email, phoneNumber, nationalRegistrationNumber string) {
	w.form.Name = strings.TrimSpace(name)
	w.form.Email = strings.TrimSpace(email)
	w.form.PhoneNumber = strings.TrimSpace(phoneNumber)
	w.form.NationalRegistrationNumber = strings.TrimSpace(nationalRegistrationNumber)
}

// SetSchool fills the second step
func (w *Wizard) SetSchool(name string, averageGrade float64) {
	w.form.SchoolName = strings.TrimSpace(name)
	w.form.SchoolAverageGrade = averageGrade
}

// SetPaymentImage fills the third step with a path to the payment proof
func (w *Wizard) SetPaymentImage(path string) {
	w.form.PaymentImagePath = path
}

// SetEssay fills the fourth step
func (w *Wizard) SetEssay(essay string) {
	w.form.Essay = essay
}

// Next advances to the following step if the current one is complete
func (w *Wizard) Next() error {
	if !w.stepComplete(w.step) {
		return ErrStepIncomplete
	}
	if w.step < 4 {
		w.step++
	}
	return nil
}

// Back returns to the previous step, keeping entered data
func (w *Wizard) Back() {
	if w.step > 1 {
		w.step--
	}
}

// Submit sends the application. It is only allowed on the final step with
// a complete essay, and resets the wizard on success.
func (w *Wizard) Submit() (*SubmitResult, error) {
	if w.step != 4 {
		return nil, ErrNotOnFinalStep
	}
	if !w.stepComplete(4) {
		return nil, ErrStepIncomplete
	}

	result, err := w.client.SubmitRegistration(&w.form)
	if err != nil {
		return nil, err
	}

	w.form = Submission{}
	w.step = 1
	return result, nil
}

// stepComplete checks the given step's required fields
func (w *Wizard) stepComplete(step int) bool {
	switch step {
	case 1:
		return w.form.Name != "" &&
			strings.Contains(w.form.Email, "@") &&
			w.form.PhoneNumber != "" &&
			w.form.NationalRegistrationNumber != ""
	case 2:
		return w.form.SchoolName != "" &&
			w.form.SchoolAverageGrade >= 0 &&
			w.form.SchoolAverageGrade <= 100
	case 3:
		return w.form.PaymentImagePath != ""
	case 4:
		length := utf8.RuneCountInString(w.form.Essay)
		return length >= EssayMinLength && length <= EssayMaxLength
	}
	return false
}
