package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("+41 79 123 45 67"))
	assert.NoError(t, Validate("079 123 45 67"))
	assert.NoError(t, Validate("+49 30 901820"))

	assert.Error(t, Validate(""))
	assert.Error(t, Validate("hello"))
	assert.Error(t, Validate("12"))
}

func TestFormatE164(t *testing.T) {
	formatted, err := FormatE164("079 123 45 67")
	require.NoError(t, err)
	assert.Equal(t, "+41791234567", formatted)
}
