package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/establishment"
	"github.com/kearneyfs/prearrange/internal/person"
)

// ClientModel edits the people on the arrangement: applicant, beneficiary,
// representative, and the location it is written under.
type ClientModel struct {
	CommonModel
	arr *arrangement.Arrangement

	form            *huh.Form
	establishment   string
	applicant       person.Applicant
	beneficiary     person.Beneficiary
	representative  person.Representative
	signedCity      string
	signedProvince  string
}

func NewClientModel(arr *arrangement.Arrangement) ClientModel {
	m := ClientModel{
		arr:            arr,
		establishment:  arr.Establishment.Key,
		applicant:      arr.Applicant,
		beneficiary:    arr.Beneficiary,
		representative: arr.Representative,
		signedCity:     arr.SignedCity,
		signedProvince: arr.SignedProvince,
	}

	m.form = m.buildForm()

	return m
}

func (m ClientModel) Title() string { return "Client Information" }

func (m ClientModel) ShortHelp() string { return "Esc: back | Enter: next field" }

func (m ClientModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ClientModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.save()

	return m, Back
}

func (m ClientModel) save() {
	if est, ok := establishment.ByKey(m.establishment); ok {
		m.arr.Establishment = est
	}

	// Contact fields are normalized on save rather than per keystroke.
	m.applicant.Phone = person.FormatPhone(m.applicant.Phone)
	m.applicant.PostalCode = person.FormatPostalCode(m.applicant.PostalCode)
	m.applicant.SIN = person.FormatSIN(m.applicant.SIN)
	m.beneficiary.Phone = person.FormatPhone(m.beneficiary.Phone)
	m.beneficiary.PostalCode = person.FormatPostalCode(m.beneficiary.PostalCode)
	m.representative.Phone = person.FormatPhone(m.representative.Phone)

	m.arr.Applicant = m.applicant
	m.arr.Beneficiary = m.beneficiary
	m.arr.Representative = m.representative
	m.arr.SignedCity = m.signedCity
	m.arr.SignedProvince = m.signedProvince
}

func (m *ClientModel) buildForm() *huh.Form {
	establishmentOptions := huh.NewOptions(establishment.Keys()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kearney Location").
				Options(establishmentOptions...).
				Value(&m.establishment),
		),
		huh.NewGroup(
			huh.NewInput().Title("First Name").Value(&m.applicant.FirstName),
			huh.NewInput().Title("Middle Name").Value(&m.applicant.MiddleName),
			huh.NewInput().Title("Last Name").Value(&m.applicant.LastName),
			huh.NewInput().Title("Birthdate").
				Description("e.g. January 2, 1950").
				Value(&m.applicant.Birthdate),
			huh.NewInput().Title("Gender").Value(&m.applicant.Gender),
			huh.NewInput().Title("SIN").Value(&m.applicant.SIN),
			huh.NewInput().Title("Occupation").Value(&m.applicant.Occupation),
		).Title("Applicant"),
		huh.NewGroup(
			huh.NewInput().Title("Phone").Value(&m.applicant.Phone),
			huh.NewInput().Title("Email").Value(&m.applicant.Email),
			huh.NewInput().Title("Address").Value(&m.applicant.Address),
			huh.NewInput().Title("City").Value(&m.applicant.City),
			huh.NewInput().Title("Province").Value(&m.applicant.Province),
			huh.NewInput().Title("Postal Code").Value(&m.applicant.PostalCode),
		).Title("Applicant Contact"),
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.beneficiary.Name),
			huh.NewInput().Title("Relationship").Value(&m.beneficiary.Relationship),
			huh.NewInput().Title("Phone").Value(&m.beneficiary.Phone),
			huh.NewInput().Title("Email").Value(&m.beneficiary.Email),
			huh.NewConfirm().
				Title("Same address as Applicant").
				Value(&m.beneficiary.SameAddress),
			huh.NewInput().Title("Address (if different)").Value(&m.beneficiary.Address),
			huh.NewInput().Title("City").Value(&m.beneficiary.City),
			huh.NewInput().Title("Province").Value(&m.beneficiary.Province),
			huh.NewInput().Title("Postal Code").Value(&m.beneficiary.PostalCode),
		).Title("Beneficiary"),
		huh.NewGroup(
			huh.NewInput().Title("First Name").Value(&m.representative.FirstName),
			huh.NewInput().Title("Middle Name").Value(&m.representative.MiddleName),
			huh.NewInput().Title("Last Name").Value(&m.representative.LastName),
			huh.NewInput().Title("ID").Value(&m.representative.ID),
			huh.NewInput().Title("Phone").Value(&m.representative.Phone),
			huh.NewInput().Title("Email").Value(&m.representative.Email),
		).Title("Representative"),
		huh.NewGroup(
			huh.NewInput().Title("Signed at City").Value(&m.signedCity),
			huh.NewInput().Title("Signed at Province").Value(&m.signedProvince),
		).Title("Signing"),
	).WithWidth(60).WithShowHelp(false)
}

func (m ClientModel) View() string {
	return padStyle.Render(titleStyle.Render(m.Title()) + "\n\n" + m.form.View())
}
