package leave

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk/internal/platform/httpx"
)

func TestValidatorServiceCodeBoundaries(t *testing.T) {
	v := NewValidator()
	cases := []struct {
		code  string
		valid bool
	}{
		{strings.Repeat("A", 7), false},
		{strings.Repeat("A", 8), true},
		{strings.Repeat("a1", 10), true},
		{strings.Repeat("A", 21), false},
		{"GSL2502-1372778", false},
		{"GSL 25021372778", false},
		{" GSL25021372778", false},
		{"GSL2502137277٨", false},
		{"ÄBCDEFGH", false},
		{"", false},
	}
	for _, tc := range cases {
		err := v.Validate(LookupRequest{ServiceCode: tc.code, IDNumber: "1088576044"})
		if tc.valid {
			assert.NoError(t, err, "code %q", tc.code)
			continue
		}
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "code %q", tc.code)
		assert.Equal(t, "serviceCode", verr.Field)
	}
}

func TestValidatorIDNumber(t *testing.T) {
	v := NewValidator()
	const digitsMsg = "idNumber must be exactly 10 digits"
	cases := []struct {
		id    string
		valid bool
		msg   string
	}{
		{"1234567890", true, ""},
		{"1088576044", true, ""},
		{"12345678901", false, digitsMsg},
		{"123456789", false, digitsMsg},
		{"12345abcde", false, digitsMsg},
		{"+123456789", false, digitsMsg},
		{"12345.6789", false, digitsMsg},
		{"١٢٣٤٥٦٧٨٩٠", false, digitsMsg},
		{"", false, "idNumber is required"},
	}
	for _, tc := range cases {
		err := v.Validate(LookupRequest{ServiceCode: "GSL25021372778", IDNumber: tc.id})
		if tc.valid {
			assert.NoError(t, err, "id %q", tc.id)
			continue
		}
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "id %q", tc.id)
		assert.Equal(t, "idNumber", verr.Field)
		assert.Equal(t, tc.msg, verr.Message, "id %q", tc.id)
	}
}

func TestValidationErrorClassifiesAsBadRequest(t *testing.T) {
	err := NewValidator().Validate(LookupRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
	assert.Equal(t, "serviceCode is required", err.Error())
}

func TestValidatorIgnoresCaptchaToken(t *testing.T) {
	err := NewValidator().Validate(LookupRequest{
		ServiceCode:  "GSL25021372778",
		IDNumber:     "1088576044",
		CaptchaToken: "",
		RemoteIP:     "not-an-ip",
	})
	assert.NoError(t, err)
}
