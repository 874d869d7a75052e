package arrangement_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/document"
	"github.com/kearneyfs/prearrange/internal/establishment"
	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
	"github.com/kearneyfs/prearrange/internal/person"
)

func newTestService(t *testing.T, repo arrangement.Repository) *arrangement.Service {
	t.Helper()

	dir := t.TempDir()

	return arrangement.NewService(
		invoice.NewEngine(),
		document.NewRenderer(filepath.Join(dir, "Filled Forms")),
		filepath.Join(dir, "Logs"),
		repo,
	)
}

// birthdateForAge builds a free-text birthdate such that the applicant is
// the given age today.
func birthdateForAge(age int) string {
	return time.Now().AddDate(-age, 0, -30).Format("January 2, 2006")
}

func TestService_SelectItem(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()

	summary, err := svc.SelectItem(a, catalog.KindCasket, "Mazri")
	require.NoError(t, err)

	assert.Equal(t, "Mazri", a.Fields[invoice.FieldCasket])
	assert.Equal(t, "795.00", a.Fields["B1"])
	assert.Equal(t, "795.00", a.Fields[invoice.FieldTotalB])
	assert.False(t, summary.GrandTotal.IsZero())
}

func TestService_SelectItem_Unknown(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()

	_, err := svc.SelectItem(a, catalog.KindCasket, "No Such Casket")
	assert.ErrorIs(t, err, arrangement.ErrUnknownItem)
	assert.Empty(t, a.Fields[invoice.FieldCasket])
}

func TestService_SelectKeepsake(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()

	_, err := svc.SelectItem(a, catalog.KindUrn, "Basic Cardboard Urn")
	require.NoError(t, err)

	_, err = svc.SelectKeepsake(a, "Blessing Keepsake Pearl")
	require.NoError(t, err)

	// Urn and keepsake live on separate lines.
	assert.Equal(t, "Basic Cardboard Urn", a.Fields[invoice.FieldUrn])
	assert.Equal(t, "Blessing Keepsake Pearl", a.Fields["Keepsake"])
	assert.Equal(t, "145.00", a.Fields["B3"])
}

func TestService_ApplyPackage(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()

	summary, err := svc.ApplyPackage(a, "Minimum Cremation - No Viewing")
	require.NoError(t, err)

	assert.Equal(t, "2,250.00", a.Fields[invoice.FieldTotalA])
	assert.Equal(t, "3,876.65", a.Fields[invoice.FieldGrandTotal])
	assert.Equal(t, "400.00", summary.Discount.StringFixed(2))

	_, err = svc.ApplyPackage(a, "Deluxe Mausoleum")
	assert.ErrorIs(t, err, invoice.ErrUnknownPackage)
}

func TestService_SelectPaymentTerm(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()
	a.Applicant.Birthdate = birthdateForAge(40)

	_, err := svc.ApplyPackage(a, "Minimum Cremation - No Viewing")
	require.NoError(t, err)

	_, err = svc.SelectPaymentTerm(a, financing.Term5)
	require.NoError(t, err)

	assert.Equal(t, financing.Term5, a.PaymentTerm)

	// Principal: ceil(4,471.65 - 0) = 4,472; 5-year factor 0.01995.
	assert.Equal(t, "89.22", a.Fields[invoice.FieldTimePay])
	assert.Equal(t, "89.22", a.Fields[invoice.FieldTotal4])
}

func TestService_SelectPaymentTerm_Unavailable(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()
	a.Applicant.Birthdate = birthdateForAge(81)
	a.Fields[invoice.FieldTotal3] = "1,000.00"
	a.Fields[invoice.FieldTimePay] = "19.95"
	a.PaymentTerm = financing.Term5

	_, err := svc.SelectPaymentTerm(a, financing.Term5)
	require.NoError(t, err)

	assert.Equal(t, financing.Term(0), a.PaymentTerm)
	assert.Empty(t, a.Fields[invoice.FieldTimePay])
}

func TestService_Quote_BadBirthdate(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()
	a.Applicant.Birthdate = "sometime in winter"

	_, err := svc.Quote(a)
	assert.ErrorIs(t, err, person.ErrInvalidBirthdate)
}

func TestService_SetSinglePayJourneyHome(t *testing.T) {
	svc := newTestService(t, nil)
	a := arrangement.New()

	_, err := svc.ApplyPackage(a, "Minimum Cremation - No Viewing")
	require.NoError(t, err)

	grandBefore := a.Fields[invoice.FieldGrandTotal]

	svc.SetSinglePayJourneyHome(a, true)

	assert.True(t, a.SinglePayJourneyHome)
	assert.Empty(t, a.Fields[invoice.FieldJourneyHome])
	assert.Equal(t, "595.00", a.Fields[invoice.FieldSinglePayJourneyHome])
	assert.Equal(t, "595.00", a.Fields[invoice.FieldTotal4])

	// Moving the amount does not change the invoice side.
	assert.Equal(t, grandBefore, a.Fields[invoice.FieldGrandTotal])

	svc.SetSinglePayJourneyHome(a, false)
	assert.Equal(t, "595.00", a.Fields[invoice.FieldJourneyHome])
	assert.Equal(t, "0.00", a.Fields[invoice.FieldTotal4])
}

func completeTestArrangement(t *testing.T, svc *arrangement.Service) *arrangement.Arrangement {
	t.Helper()

	a := arrangement.New()

	est, ok := establishment.ByKey("Kearney Funeral Services (KFS)")
	require.True(t, ok)

	a.Establishment = est
	a.Applicant = person.Applicant{
		FirstName: "Mary",
		LastName:  "Doyle",
		Birthdate: birthdateForAge(62),
	}

	_, err := svc.ApplyPackage(a, "Minimum Cremation - No Viewing")
	require.NoError(t, err)

	return a
}

func TestService_Complete(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *arrangement.MockRepository)
		useRepo   bool
		wantErr   bool
	}

	tests := []testCase{
		{
			name:    "NoArchive",
			useRepo: false,
		},
		{
			name:    "Archived",
			useRepo: true,
			setupMock: func(m *arrangement.MockRepository) {
				m.EXPECT().
					SaveArrangement(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:    "ArchiveError",
			useRepo: true,
			setupMock: func(m *arrangement.MockRepository) {
				m.EXPECT().
					SaveArrangement(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var repo arrangement.Repository

			if tt.useRepo {
				mock := arrangement.NewMockRepository(ctrl)
				if tt.setupMock != nil {
					tt.setupMock(mock)
				}

				repo = mock
			}

			svc := newTestService(t, repo)
			a := completeTestArrangement(t, svc)

			result, err := svc.Complete(context.Background(), a)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, result.FormPaths, 5)
			assert.NotEmpty(t, result.ValueLogPath)

			assert.Equal(t, "Mary Doyle - Protector Plus TruStage Application form.pdf",
				filepath.Base(result.FormPaths[0]))
		})
	}
}
