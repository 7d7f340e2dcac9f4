package report

import (
	"io"
	"strings"
	"time"

	"github.com/dimasdaffa/fe-rembugwarga/app/format"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/phpdave11/gofpdf"
)

const maxPDFRows = 500

var pdfCols = []float64{28, 92, 30, 32}

// WritePDF renders the report as an A4 statement.
func WritePDF(w io.Writer, r *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Laporan Keuangan Rembug Warga")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Periode: "+r.Title())
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{60, 62, 60}
	pdf.CellFormat(sumW[0], 10, "Total Pemasukan", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Total Pengeluaran", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Saldo Akhir", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, format.Rupiah(r.Summary.TotalIncome), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, format.Rupiah(r.Summary.TotalExpense), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, format.Rupiah(r.Summary.Balance), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdfHeader(pdf)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)

	if len(r.Transactions) == 0 {
		pdf.CellFormat(0, 8, "Tidak ada transaksi pada periode ini.", "1", 1, "C", false, 0, "")
	}
	for i, t := range r.Transactions {
		if i >= maxPDFRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "... dipotong (terlalu banyak baris)", "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			pdfHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}

		pdf.CellFormat(pdfCols[0], 8, format.ShortDate(t.Date), "1", 0, "C", false, 0, "")

		x, y := pdf.GetX(), pdf.GetY()
		pdf.MultiCell(pdfCols[1], 8, tr(trimTo(t.Description, 90)), "1", "L", false)
		usedH := pdf.GetY() - y
		pdf.SetXY(x+pdfCols[1], y)

		pdf.CellFormat(pdfCols[2], usedH, t.Kind.Label(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfCols[3], usedH, signedRupiah(t), "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Dibuat "+time.Now().Format("02/01/2006 15:04"), "", 0, "C", false, 0, "")

	return pdf.Output(w)
}

func pdfHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(pdfCols[0], 8, "TANGGAL", "1", 0, "C", true, 0, "")
	pdf.CellFormat(pdfCols[1], 8, "DESKRIPSI", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfCols[2], 8, "JENIS", "1", 0, "C", true, 0, "")
	pdf.CellFormat(pdfCols[3], 8, "JUMLAH", "1", 1, "R", true, 0, "")
}

func signedRupiah(t models.TransactionDetail) string {
	if t.Kind == models.KindExpense {
		return "- " + format.Rupiah(t.Amount)
	}
	return "+ " + format.Rupiah(t.Amount)
}

// trimTo shortens s to at most max runes.
func trimTo(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-3]) + "..."
}
