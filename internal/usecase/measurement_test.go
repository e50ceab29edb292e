package usecase

import (
	"testing"

	"github.com/nutresa-radar/backend/internal/domain"
)

func TestExtractMeasurement(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  *domain.Measurement
	}{
		{
			name:  "plain grams",
			input: "Cafe 500g",
			want:  &domain.Measurement{Amount: 500, Unit: domain.UnitGrams},
		},
		{
			name:  "gr abbreviation",
			input: "Arroz Diana 1000gr",
			want:  &domain.Measurement{Amount: 1000, Unit: domain.UnitGrams},
		},
		{
			name:  "gramos spelled out",
			input: "Panela 250gramos",
			want:  &domain.Measurement{Amount: 250, Unit: domain.UnitGrams},
		},
		{
			name:  "kilograms convert to grams",
			input: "Cafe 1kg",
			want:  &domain.Measurement{Amount: 1000, Unit: domain.UnitGrams},
		},
		{
			name:  "kilo spelled out",
			input: "Azucar 2kilos",
			want:  &domain.Measurement{Amount: 2000, Unit: domain.UnitGrams},
		},
		{
			name:  "milliliters",
			input: "Yogurt 400ml",
			want:  &domain.Measurement{Amount: 400, Unit: domain.UnitMilliliters},
		},
		{
			name:  "cubic centimeters are milliliters",
			input: "Gaseosa 3000cc",
			want:  &domain.Measurement{Amount: 3000, Unit: domain.UnitMilliliters},
		},
		{
			name:  "glued liters convert to milliliters",
			input: "Leche 1l",
			want:  &domain.Measurement{Amount: 1000, Unit: domain.UnitMilliliters},
		},
		{
			name:  "spaced liters via fallback",
			input: "Agua 1.5 l",
			want:  &domain.Measurement{Amount: 1500, Unit: domain.UnitMilliliters},
		},
		{
			name:  "litros spelled out",
			input: "Aceite 2litros",
			want:  &domain.Measurement{Amount: 2000, Unit: domain.UnitMilliliters},
		},
		{
			name:  "comma decimal separator",
			input: "Leche 1,5lt",
			want:  &domain.Measurement{Amount: 1500, Unit: domain.UnitMilliliters},
		},
		{
			name:  "retail pound is 500 grams",
			input: "Cafe 1lb",
			want:  &domain.Measurement{Amount: 500, Unit: domain.UnitGrams},
		},
		{
			name:  "libra spelled out",
			input: "Frijol 2libras",
			want:  &domain.Measurement{Amount: 1000, Unit: domain.UnitGrams},
		},
		{
			name:  "ounces round to grams",
			input: "Cafe 16oz",
			want:  &domain.Measurement{Amount: 454, Unit: domain.UnitGrams},
		},
		{
			name:  "unit count",
			input: "Papel 12 und",
			want:  &domain.Measurement{Amount: 12, Unit: domain.UnitCount},
		},
		{
			name:  "unidades spelled out",
			input: "Huevos 30 unidades",
			want:  &domain.Measurement{Amount: 30, Unit: domain.UnitCount},
		},
		{
			name:  "paquete counts",
			input: "Galletas 6 paquetes",
			want:  &domain.Measurement{Amount: 6, Unit: domain.UnitCount},
		},
		{
			name:  "count wins over trailing weight",
			input: "Chocolatina 12 und x 30g",
			want:  &domain.Measurement{Amount: 12, Unit: domain.UnitCount},
		},
		{
			name:  "no quantity token",
			input: "Cafe sello rojo",
			want:  nil,
		},
		{
			name:  "number without unit",
			input: "Promocion 3x2",
			want:  nil,
		},
		{
			name:  "spaced grams are not recognized",
			input: "Cafe 500 g",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractMeasurement(tc.input)

			if tc.want == nil {
				if got != nil {
					t.Fatalf("ExtractMeasurement(%q) = %+v, want nil", tc.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractMeasurement(%q) = nil, want %+v", tc.input, tc.want)
			}
			if got.Amount != tc.want.Amount || got.Unit != tc.want.Unit {
				t.Errorf("ExtractMeasurement(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}
