package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotEmpty(t *testing.T) {
	validate := notEmpty("el símbolo")

	assert.NoError(t, validate("DOEne21"))

	err := validate("   ")
	assert.EqualError(t, err, "el símbolo no puede estar vacío")
	assert.Error(t, validate(""))
}
