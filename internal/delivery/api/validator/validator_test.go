package validator

import (
	"testing"

	domainerrors "vendorhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorForm struct {
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phoneNumber" validate:"required,phone"`
	PostalCode string   `json:"postalCode" validate:"required,postalcode"`
	GSTNumber  string   `json:"gstNumber" validate:"omitempty,gstin"`
	Password   string   `json:"password" validate:"required,min=6"`
	ServiceIDs []string `json:"serviceIds" validate:"required,min=1,dive,uuid"`
	Token      string   `param:"token" validate:"required"`
}

func validForm() vendorForm {
	return vendorForm{
		Email:      "asha@example.com",
		Phone:      "+919876543210",
		PostalCode: "56001",
		GSTNumber:  "29ABCDE1234F1Z5",
		Password:   "secret1",
		ServiceIDs: []string{"1b4e28ba-2fa1-11d2-883f-0016d3cca427"},
		Token:      "abc",
	}
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		mutate func(*vendorForm)
		want   []string
	}{
		{"valid", func(*vendorForm) {}, nil},
		{"zip plus four", func(f *vendorForm) { f.PostalCode = "56001-1234" }, nil},
		{"empty gst is optional", func(f *vendorForm) { f.GSTNumber = "" }, nil},
		{"bad phone", func(f *vendorForm) { f.Phone = "0123" }, []string{"phoneNumber must be a valid phone number"}},
		{"bad postal code", func(f *vendorForm) { f.PostalCode = "5600" }, []string{"postalCode must be a valid postal code"}},
		{"bad gst", func(f *vendorForm) { f.GSTNumber = "29abcde1234f1z5" }, []string{"gstNumber must be a valid GST number"}},
		{"short password", func(f *vendorForm) { f.Password = "12345" }, []string{"password must be at least 6 characters long"}},
		{"no services", func(f *vendorForm) { f.ServiceIDs = []string{} }, []string{"serviceIds must contain at least 1 item(s)"}},
		{"bad service id", func(f *vendorForm) { f.ServiceIDs = []string{"x"} }, []string{"serviceIds[0] must be a valid UUID"}},
		{"param name", func(f *vendorForm) { f.Token = "" }, []string{"token is required"}},
		{
			"several fields",
			func(f *vendorForm) { f.Email = "nope"; f.Password = "" },
			[]string{"email must be a valid email address", "password is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := v.Validate(&form)
			if tt.want == nil {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.want, appErr.Details())
		})
	}
}
