package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
)

func TestDirection(t *testing.T) {
	ex := extractor.NewExtractor()

	t.Run("debit keyword", func(t *testing.T) {
		direction := ex.Direction("Sent Rs.36.00 to BMTC BUS")
		assert.NotNil(t, direction)
		assert.Equal(t, database.DirectionDebited, *direction)
	})

	t.Run("credit keyword", func(t *testing.T) {
		direction := ex.Direction("INR 1.00 credited to your account")
		assert.NotNil(t, direction)
		assert.Equal(t, database.DirectionCredited, *direction)
	})

	t.Run("exclusion wins over debit keyword", func(t *testing.T) {
		assert.Nil(t, ex.Direction("A mandate has been created and Rs.500 will be debited"))
	})

	t.Run("otp message", func(t *testing.T) {
		assert.Nil(t, ex.Direction("Your OTP for payment is 123456"))
	})

	t.Run("promotional message", func(t *testing.T) {
		assert.Nil(t, ex.Direction("Pre-approved loan offer just for you, apply now"))
	})

	t.Run("debit checked before credit", func(t *testing.T) {
		direction := ex.Direction("paid and cashback received")
		assert.NotNil(t, direction)
		assert.Equal(t, database.DirectionDebited, *direction)
	})

	t.Run("no keywords", func(t *testing.T) {
		assert.Nil(t, ex.Direction("hello there"))
	})
}
