package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMajor(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12.34", want: 1234},
		{in: "1", want: 100},
		{in: "0.01", want: 1},
		{in: "0.005", want: 1}, // rounds half away from zero
		{in: " 99.99 ", want: 9999},
		{in: "0", wantErr: true},
		{in: "0.00", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "12,34", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMajor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMajorOverflow(t *testing.T) {
	_, err := ParseMajor("99999999999999999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12.34", FormatCents(1234))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "-3.00", FormatCents(-300))
}
