package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"Paracetamol, 10.00",
		"  Ibuprofen ,25.50  ",
		"",
		"Cough Syrup,abc",
		"Bandage",
		",4.00",
		"Antiseptic,-2",
		"Paracetamol,12,extra",
	}, "\n")

	medicines, skipped := Load(strings.NewReader(input))

	require.Len(t, medicines, 3)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	assert.True(t, medicines[0].Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "Ibuprofen", medicines[1].Name)
	assert.True(t, medicines[1].Price.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, "Paracetamol", medicines[2].Name, "duplicate names are distinct entries")
	assert.True(t, medicines[2].Price.Equal(decimal.NewFromInt(12)))

	require.Len(t, skipped, 4)
	assert.ErrorIs(t, skipped[0], ErrInvalidPrice)
	assert.Equal(t, 4, skipped[0].Line)
	assert.ErrorIs(t, skipped[1], ErrMissingPrice)
	assert.Equal(t, 5, skipped[1].Line)
	assert.ErrorIs(t, skipped[2], ErrMissingName)
	assert.ErrorIs(t, skipped[3], ErrNegativePrice)
	assert.Contains(t, skipped[0].Error(), "line 4")
}

func TestLoad_Empty(t *testing.T) {
	medicines, skipped := Load(strings.NewReader(""))
	assert.Empty(t, medicines)
	assert.Empty(t, skipped)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medicines.txt")
	require.NoError(t, os.WriteFile(path, []byte("Paracetamol,10.00\nIbuprofen,25.50\n"), 0o644))

	medicines, skipped, err := LoadFile(path)

	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Len(t, medicines, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	medicines, skipped, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, medicines)
	assert.Empty(t, skipped)
}

func TestLoad_StrayQuoteOnlySkipsItsLine(t *testing.T) {
	input := "Paracetamol,10.00\n\"Cough Syrup,64.00\nIbuprofen,25.50\nCetirizine,18.75"

	medicines, skipped := Load(strings.NewReader(input))

	require.Len(t, medicines, 3)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	assert.Equal(t, "Ibuprofen", medicines[1].Name)
	assert.Equal(t, "Cetirizine", medicines[2].Name)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Line)
	assert.ErrorIs(t, skipped[0], ErrMissingPrice)
}

func TestLoad_QuotedNameWithComma(t *testing.T) {
	medicines, skipped := Load(strings.NewReader("\"Cough Syrup, 100ml\",64.00\r\nIbuprofen,25.50\r\n"))

	assert.Empty(t, skipped)
	require.Len(t, medicines, 2)
	assert.Equal(t, "Cough Syrup, 100ml", medicines[0].Name)
	assert.True(t, medicines[0].Price.Equal(decimal.NewFromInt(64)))
}
