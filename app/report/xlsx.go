package report

import (
	"io"

	"github.com/dimasdaffa/fe-rembugwarga/app/format"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Laporan"

// WriteXLSX renders the report as a single-sheet workbook. Amounts are numeric cells.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Laporan Keuangan Rembug Warga"},
		{"Periode", r.Title()},
		{},
		{"Total Pemasukan", r.Summary.TotalIncome.InexactFloat64()},
		{"Total Pengeluaran", r.Summary.TotalExpense.InexactFloat64()},
		{"Saldo Akhir", r.Summary.Balance.InexactFloat64()},
		{},
		{"ID", "Tanggal", "Deskripsi", "Jenis", "Jumlah"},
	}
	headerRow := len(rows)
	for _, t := range r.Transactions {
		rows = append(rows, []interface{}{
			t.ID, format.ShortDate(t.Date), t.Description, t.Kind.Label(), t.Amount.InexactFloat64(),
		})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheetName, "A1", "A1", bold); err != nil {
		return err
	}
	hStart, _ := excelize.CoordinatesToCellName(1, headerRow)
	hEnd, _ := excelize.CoordinatesToCellName(5, headerRow)
	if err := f.SetCellStyle(sheetName, hStart, hEnd, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", "B", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "C", 48); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "D", "E", 16); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
