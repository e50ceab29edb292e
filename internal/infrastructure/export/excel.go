package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nutresa-radar/backend/internal/domain"
)

// Sheet names of the exported workbook.
const (
	sheetSummary = "Resumen"
	sheetDetail  = "Detalle"
	sheetStores  = "Comparativo"
)

// Filename builds the export file name:
// Comparador_<Category>_<SanitizedQuery>_<ISODate>.xlsx
// with query whitespace replaced by underscores.
func Filename(category, query string, now time.Time) string {
	sanitized := strings.Join(strings.Fields(strings.TrimSpace(query)), "_")
	if sanitized == "" {
		sanitized = "consulta"
	}
	return fmt.Sprintf("Comparador_%s_%s_%s.xlsx", category, sanitized, now.Format("2006-01-02"))
}

// Workbook renders an audit result into a three-sheet spreadsheet:
// summary statistics, per-product detail sorted by price-per-unit
// ascending, and per-store aggregates sorted by average price-per-unit
// ascending.
func Workbook(result *domain.ParetoResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummary(f, result); err != nil {
		return nil, err
	}
	if err := writeDetail(f, result); err != nil {
		return nil, err
	}
	if err := writeStores(f, result); err != nil {
		return nil, err
	}

	// excelize names the initial sheet "Sheet1"; the summary replaces it.
	f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(sheetSummary); err == nil {
		f.SetActiveSheet(index)
	}

	return f, nil
}

func writeSummary(f *excelize.File, result *domain.ParetoResult) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	products := allProducts(result)
	var totalPrice float64
	withMeasurement := 0
	for _, product := range products {
		totalPrice += product.Price
		if product.Measurement != nil {
			withMeasurement++
		}
	}

	rows := [][]any{
		{"Referencias auditadas", len(result.Rows)},
		{"Productos encontrados", len(products)},
		{"Tiendas consultadas", len(result.Metadata.StoresQueried)},
		{"Con gramaje identificado", withMeasurement},
	}
	if len(products) > 0 {
		rows = append(rows, []any{"Precio promedio", totalPrice / float64(len(products))})
	}

	if err := f.SetSheetRow(sheetSummary, "A1", &[]any{"Indicador", "Valor"}); err != nil {
		return err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(f *excelize.File, result *domain.ParetoResult) error {
	if _, err := f.NewSheet(sheetDetail); err != nil {
		return err
	}

	products := allProducts(result)
	// Price-per-unit ascending; products without a measurement sink to
	// the bottom so the cheapest comparable rows lead the sheet.
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].PricePerUnit, products[j].PricePerUnit
		if a == 0 {
			return false
		}
		if b == 0 {
			return true
		}
		return a < b
	})

	header := []any{"Producto", "Tienda", "EAN", "Precio", "Cantidad", "Unidad", "Precio por unidad"}
	if err := f.SetSheetRow(sheetDetail, "A1", &header); err != nil {
		return err
	}

	for i, product := range products {
		row := []any{product.Name, product.Brand.Name, product.EAN, product.Price, nil, nil, nil}
		if product.Measurement != nil {
			row[4] = product.Measurement.Amount
			row[5] = string(product.Measurement.Unit)
		}
		if product.PricePerUnit > 0 {
			row[6] = product.PricePerUnit
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetDetail, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeStores(f *excelize.File, result *domain.ParetoResult) error {
	if _, err := f.NewSheet(sheetStores); err != nil {
		return err
	}

	header := []any{"Tienda", "Productos", "Precio promedio", "Precio promedio por unidad"}
	if err := f.SetSheetRow(sheetStores, "A1", &header); err != nil {
		return err
	}

	// Aggregates arrive already sorted by average price-per-unit.
	for i, aggregate := range result.Aggregates {
		row := []any{aggregate.StoreName, aggregate.ProductCount, aggregate.AveragePrice, nil}
		if aggregate.AvgPricePerUnit > 0 {
			row[3] = aggregate.AvgPricePerUnit
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetStores, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func allProducts(result *domain.ParetoResult) []domain.MarketProduct {
	var products []domain.MarketProduct
	for _, row := range result.Rows {
		products = append(products, row.Products...)
	}
	return products
}
