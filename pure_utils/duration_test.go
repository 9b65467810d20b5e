package pure_utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in       time.Duration
		expected string
	}{
		{0, "0s"},
		{-5 * time.Minute, "0s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{90 * time.Second, "1m 30s"},
		{time.Hour, "1h"},
		{3*time.Hour + 10*time.Minute, "3h 10m"},
		{51*time.Hour + 10*time.Minute, "2d 3h 10m"},
		{24 * time.Hour, "1d"},
		{25*time.Hour + 30*time.Second, "1d 1h"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, FormatDuration(c.in), "FormatDuration(%v)", c.in)
	}
}
