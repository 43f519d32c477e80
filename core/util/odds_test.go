package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOdds(t *testing.T) {
	assert.Equal(t, "1.500", FormatOdds(1.5))
	assert.Equal(t, "1.500", FormatOdds(1.500))
	assert.Equal(t, "2.000", FormatOdds(2))
	assert.Equal(t, "1.001", FormatOdds(1.001))
	assert.Equal(t, "100.250", FormatOdds(100.25))
}
