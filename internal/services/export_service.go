package services

import (
	"bytes"
	"fmt"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/models"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// Columnas del export a Excel, en el mismo orden que la hoja.
var excelColumns = []struct {
	Header string
	Width  float64
}{
	{"Tipo", 10},
	{"Sell Price", 15},
	{"USDT", 10},
	{"USD", 10},
	{"Fee", 10},
	{"Profit", 12},
	{"Cliente", 20},
	{"Fecha", 15},
	{"Plataforma", 15},
	{"Método de Pago", 18},
}

// BuildTransactionsExcel genera el archivo .xlsx con las transacciones
// enriquecidas. Los montos van formateados a 2 decimales como texto.
func BuildTransactionsExcel(transactions []models.EnrichedTransaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transacciones"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, col := range excelColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return nil, err
		}
	}

	for row, tx := range transactions {
		values := []interface{}{
			tx.TransactionType,
			fmt.Sprintf("%.2f", tx.SellPrice),
			tx.Usdt,
			tx.Usd,
			fmt.Sprintf("%.2f", tx.FeeAmount),
			fmt.Sprintf("%.2f", tx.Profit),
			tx.ClientName,
			tx.Date,
			tx.Platform,
			tx.PaymentMethod,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Columnas del export a PDF con sus anchos en milímetros.
var pdfColumns = []struct {
	Header string
	Width  float64
}{
	{"Tipo", 16},
	{"USDT", 18},
	{"USD", 18},
	{"Fee", 15},
	{"Profit", 18},
	{"Cliente", 35},
	{"Fecha", 22},
	{"Plataforma", 24},
	{"Método", 24},
}

// BuildTransactionsPDF genera el reporte en PDF con las mismas transacciones
// enriquecidas del export a Excel.
func BuildTransactionsPDF(transactions []models.EnrichedTransaction) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "BU", 16)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 10, "Reporte de Transacciones", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(68, 68, 68)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.Width, 7, col.Header, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, tx := range transactions {
		values := []string{
			tx.TransactionType,
			fmt.Sprintf("%.2f", tx.Usdt),
			fmt.Sprintf("%.2f", tx.Usd),
			fmt.Sprintf("%.2f", tx.FeeAmount),
			fmt.Sprintf("%.2f", tx.Profit),
			tx.ClientName,
			tx.Date,
			tx.Platform,
			tx.PaymentMethod,
		}
		for i, value := range values {
			pdf.CellFormat(pdfColumns[i].Width, 6, value, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
