package export

import (
	"fmt"

	"backoffice/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

// Workbooks builds spreadsheet reports. Currency is the symbol used in the
// money number format.
type Workbooks struct {
	Currency string
}

func (w Workbooks) moneyFormat() string {
	symbol := w.Currency
	if symbol == "" {
		symbol = DefaultCurrency
	}
	return fmt.Sprintf(`"%s"#,##0.00`, symbol)
}

// BoughtAds lists the ads bought in a period, one per row.
func (w Workbooks) BoughtAds(ads []models.Ad) ([]byte, error) {
	headers := []string{"ID", "Tipo", "Contenido", "Cine", "Estado de pago", "Pagado", "Vence", "Precio", "Activo"}
	rows := make([][]any, 0, len(ads))
	for _, ad := range ads {
		rows = append(rows, []any{
			ad.ID,
			string(ad.Type),
			ad.Content,
			ad.CinemaID,
			string(ad.PaymentState),
			FormatDate(ad.PaidAt),
			FormatDate(ad.AddExpiration),
			ad.Price,
			yesNo(ad.Active),
		})
	}
	return w.sheet("Anuncios comprados", headers, rows, 8, nil)
}

// AdvertiserEarnings lists the paid ads per advertiser and closes with the
// total reported by the backend.
func (w Workbooks) AdvertiserEarnings(report *models.AdvertiserEarningsReport) ([]byte, error) {
	if report == nil {
		report = &models.AdvertiserEarningsReport{}
	}
	headers := []string{"ID", "Tipo", "Anunciante", "Pagado", "Vence", "Precio"}
	rows := make([][]any, 0, len(report.Adds))
	for _, line := range report.Adds {
		rows = append(rows, []any{
			line.ID,
			string(line.Type),
			line.UserFullName,
			FormatDate(line.PaidAt),
			FormatDate(line.AddExpiration),
			line.Price,
		})
	}
	total := []any{"Total", "", "", "", "", report.TotalGanancias}
	return w.sheet("Ganancias", headers, rows, 6, total)
}

func (w Workbooks) sheet(name string, headers []string, rows [][]any, moneyCol int, total []any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(name)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	moneyFormat := w.moneyFormat()
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(name, cell, h)
		_ = f.SetCellStyle(name, cell, cell, headerStyle)
	}

	if total != nil {
		rows = append(rows, total)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(name, cell, v)
			if c+1 == moneyCol {
				_ = f.SetCellStyle(name, cell, cell, moneyStyle)
			}
		}
	}

	if total != nil {
		totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFormat})
		if err == nil {
			first, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
			last, _ := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
			_ = f.SetCellStyle(name, first, last, totalStyle)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.SetColWidth(name, "A", lastCol, 20)
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type saleRow struct {
	ID               string  `csv:"id"`
	CinemaID         string  `csv:"cinema_id"`
	ClientID         string  `csv:"client_id"`
	Status           string  `csv:"status"`
	TotalAmount      float64 `csv:"total_amount"`
	ClaimedAmount    float64 `csv:"claimed_amount"`
	DiscountedAmount float64 `csv:"discounted_amount"`
	Snacks           int     `csv:"snack_lines"`
	Tickets          int     `csv:"ticket_lines"`
	CreatedAt        string  `csv:"created_at"`
	PaidAt           string  `csv:"paid_at"`
}

// SalesCSV writes one row per sale.
func SalesCSV(sales []models.Sale) ([]byte, error) {
	rows := make([]*saleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, &saleRow{
			ID:               s.ID,
			CinemaID:         s.CinemaID,
			ClientID:         s.ClientID,
			Status:           string(s.Status),
			TotalAmount:      s.TotalAmount,
			ClaimedAmount:    s.ClaimedAmount,
			DiscountedAmount: s.DiscountedAmount,
			Snacks:           len(s.SaleLineSnacks),
			Tickets:          len(s.SaleLineTickets),
			CreatedAt:        isoOrEmpty(s.CreatedAt),
			PaidAt:           isoOrEmpty(s.PaidAt),
		})
	}
	data, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal sales csv: %w", err)
	}
	return data, nil
}

func isoOrEmpty(t models.Timestamp) string {
	if t.IsZero() {
		return t.Raw
	}
	return t.Format("2006-01-02T15:04:05")
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
