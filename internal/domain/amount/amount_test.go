package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMajorUnitString(t *testing.T) {
	m, err := FromMajorUnitString("19.99", "USD")
	assert.NoError(t, err)
	assert.Equal(t, Minor(1999), m)

	m, err = FromMajorUnitString("100", "JPY")
	assert.NoError(t, err)
	assert.Equal(t, Minor(100), m)

	m, err = FromMajorUnitString("1.234", "BHD")
	assert.NoError(t, err)
	assert.Equal(t, Minor(1234), m)
}

func TestFromMajorUnitString_InvalidInput(t *testing.T) {
	_, err := FromMajorUnitString("not-a-number", "USD")
	assert.Error(t, err)
}

func TestToMajorUnitString(t *testing.T) {
	assert.Equal(t, "19.99", ToMajorUnitString(Minor(1999), "USD"))
	assert.Equal(t, "100", ToMajorUnitString(Minor(100), "JPY"))
}

func TestMinorConversions(t *testing.T) {
	m := Minor(1999)
	assert.Equal(t, int64(1999), m.ToMinorUnitI64())
	assert.Equal(t, "1999", m.ToMinorUnitString())
}

func TestDigits(t *testing.T) {
	assert.Equal(t, int32(2), Digits("USD"))
	assert.Equal(t, int32(0), Digits("JPY"))
	assert.Equal(t, int32(3), Digits("BHD"))
}
