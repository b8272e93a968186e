package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
)

func TestBankFromAddress(t *testing.T) {
	ex := extractor.NewExtractor()

	t.Run("matches token inside sender address", func(t *testing.T) {
		bank := ex.Bank("AX-HDFCBK-S")
		assert.NotNil(t, bank)
		assert.Equal(t, "HDFC", *bank)
	})

	t.Run("matches lowercase address", func(t *testing.T) {
		bank := ex.Bank("jk-axisbk-s")
		assert.NotNil(t, bank)
		assert.Equal(t, "AXIS", *bank)
	})

	t.Run("first bank in table order wins", func(t *testing.T) {
		bank := ex.Bank("AXIS-HDFC")
		assert.NotNil(t, bank)
		assert.Equal(t, "HDFC", *bank)
	})

	t.Run("no token", func(t *testing.T) {
		assert.Nil(t, ex.Bank("VM-UNKNOWN-S"))
	})

	t.Run("empty address", func(t *testing.T) {
		assert.Nil(t, ex.Bank(""))
	})
}
