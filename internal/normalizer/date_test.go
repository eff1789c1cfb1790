package normalizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/certification-manager-api/internal/domain"
)

func TestDate_FormatosDeTexto(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{name: "DD/MM/YYYY", raw: "31/12/2025", expected: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "DD/MM/YYYY com hora", raw: "01/07/2025 14:30", expected: time.Date(2025, 7, 1, 14, 30, 0, 0, time.UTC)},
		{name: "ISO", raw: "2025-07-01", expected: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{name: "ISO com hora", raw: "2025-07-01T08:15:00", expected: time.Date(2025, 7, 1, 8, 15, 0, 0, time.UTC)},
		{name: "Data embutida em texto livre", raw: "ativado em 05/08/2025 pela central", expected: time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := Date(domain.TextCell(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, date)
		})
	}
}

func TestDate_SerialDePlanilha(t *testing.T) {
	// Serial 1 corresponde a 01/01/1900
	date, err := Date(domain.NumberCell(1))
	require.NoError(t, err)
	assert.Equal(t, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), date)

	// Serial de data moderna: 45839 = 01/07/2025
	date, err = Date(domain.NumberCell(45839))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), date)
}

func TestDate_DataNativa(t *testing.T) {
	native := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	date, err := Date(domain.DateCell(native))
	require.NoError(t, err)
	assert.Equal(t, native, date)
}

func TestDate_EntradasInvalidas(t *testing.T) {
	for _, cell := range []domain.CellValue{
		domain.TextCell("amanhã"),
		domain.TextCell(""),
		domain.NumberCell(0),
		domain.NumberCell(-3),
		domain.EmptyCell(),
		domain.DateCell(time.Time{}),
	} {
		_, err := Date(cell)
		assert.ErrorIs(t, err, ErrInvalidDate)
	}
}
