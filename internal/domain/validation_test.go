package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var validationNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validRequestInput() ServiceRequestInput {
	return ServiceRequestInput{
		Item: Item{
			Name:             "Laptop",
			Condition:        "Used",
			IssueDescription: "Screen flickers on boot",
		},
		RequestedServiceDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		PaymentMethodID:      1,
	}
}

func TestServiceRequestInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(in *ServiceRequestInput)
		wantErr bool
	}{
		{"Valid", func(in *ServiceRequestInput) {}, false},
		{"Short name", func(in *ServiceRequestInput) { in.Item.Name = " L " }, true},
		{"Long name", func(in *ServiceRequestInput) { in.Item.Name = strings.Repeat("x", 101) }, true},
		{"Cyrillic name counts runes", func(in *ServiceRequestInput) { in.Item.Name = strings.Repeat("ж", 100) }, false},
		{"No condition", func(in *ServiceRequestInput) { in.Item.Condition = "  " }, true},
		{"Short description", func(in *ServiceRequestInput) { in.Item.IssueDescription = "broken" }, true},
		{"Long description", func(in *ServiceRequestInput) { in.Item.IssueDescription = strings.Repeat("x", 501) }, true},
		{"Today", func(in *ServiceRequestInput) { in.RequestedServiceDate = validationNow.Add(time.Hour) }, true},
		{"Tomorrow midnight", func(in *ServiceRequestInput) {
			in.RequestedServiceDate = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
		}, false},
		{"Ninety days ahead", func(in *ServiceRequestInput) {
			in.RequestedServiceDate = time.Date(2026, 6, 8, 18, 0, 0, 0, time.UTC)
		}, false},
		{"Ninety one days ahead", func(in *ServiceRequestInput) {
			in.RequestedServiceDate = time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)
		}, true},
		{"No payment method", func(in *ServiceRequestInput) { in.PaymentMethodID = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRequestInput()
			tt.modify(&in)

			err := in.Validate(validationNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEstimateInputValidate(t *testing.T) {
	tomorrow := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, EstimateInput{Cost: 1, CompletionDate: tomorrow}.Validate(validationNow))
	assert.ErrorIs(t, EstimateInput{Cost: 0, CompletionDate: tomorrow}.Validate(validationNow), ErrInvalidInput)
	assert.ErrorIs(t, EstimateInput{Cost: -100, CompletionDate: tomorrow}.Validate(validationNow), ErrInvalidInput)
	assert.ErrorIs(t, EstimateInput{Cost: 1, CompletionDate: validationNow.Add(time.Hour)}.Validate(validationNow), ErrInvalidInput)
}

func TestReportInputValidate(t *testing.T) {
	created := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	valid := func() ReportInput {
		return ReportInput{
			RepairDetails:     "Replaced the display cable",
			ResolutionSummary: "Fixed",
			CompletionDate:    time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		}
	}

	assert.NoError(t, valid().Validate(validationNow, created))

	in := valid()
	in.CompletionDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, in.Validate(validationNow, created), "same day as the request")

	in = valid()
	in.CompletionDate = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, in.Validate(validationNow, created), ErrInvalidInput)

	in = valid()
	in.CompletionDate = validationNow.Add(time.Minute)
	assert.ErrorIs(t, in.Validate(validationNow, created), ErrInvalidInput)

	in = valid()
	in.CompletionDate = time.Time{}
	assert.ErrorIs(t, in.Validate(validationNow, created), ErrInvalidInput)

	in = valid()
	in.RepairDetails = "Fixed it"
	assert.ErrorIs(t, in.Validate(validationNow, created), ErrInvalidInput)

	in = valid()
	in.ResolutionSummary = " "
	assert.ErrorIs(t, in.Validate(validationNow, created), ErrInvalidInput)
}

func TestCouponValidate(t *testing.T) {
	expiry := validationNow.AddDate(0, 1, 0)

	assert.NoError(t, (&Coupon{DiscountValue: 0.2, MaxUsage: 5, ExpiryDate: expiry}).Validate())
	assert.NoError(t, (&Coupon{DiscountValue: 1, MaxUsage: 5, UsageCount: 5, ExpiryDate: expiry}).Validate())
	assert.ErrorIs(t, (&Coupon{DiscountValue: 0, MaxUsage: 5, ExpiryDate: expiry}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&Coupon{DiscountValue: 1.2, MaxUsage: 5, ExpiryDate: expiry}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&Coupon{DiscountValue: 0.2, MaxUsage: 0, ExpiryDate: expiry}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&Coupon{DiscountValue: 0.2, MaxUsage: 2, UsageCount: 3, ExpiryDate: expiry}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&Coupon{DiscountValue: 0.2, MaxUsage: 2}).Validate(), ErrInvalidInput)
}

func TestPaymentMethodValidate(t *testing.T) {
	assert.NoError(t, (&PaymentMethod{Name: "Wallet", Provider: "repairhub"}).Validate())
	assert.ErrorIs(t, (&PaymentMethod{Provider: "repairhub"}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&PaymentMethod{Name: "Wallet"}).Validate(), ErrInvalidInput)
}

func TestReviewInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ReviewInput
		wantErr bool
	}{
		{"Valid", ReviewInput{Rating: 4, Comment: "Good work"}, false},
		{"Lowest rating", ReviewInput{Rating: RatingMin, Comment: "Bad"}, false},
		{"Zero rating", ReviewInput{Rating: 0, Comment: "Bad"}, true},
		{"Rating above five", ReviewInput{Rating: 6, Comment: "Great"}, true},
		{"Blank comment", ReviewInput{Rating: 3, Comment: "   "}, true},
		{"Comment too long", ReviewInput{Rating: 3, Comment: strings.Repeat("a", ReviewCommentMaxLength+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
