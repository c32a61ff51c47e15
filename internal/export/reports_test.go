package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestBoughtAdsWorkbook(t *testing.T) {
	ads := []models.Ad{
		{ID: "ad-1", Type: models.AdTextBanner, Content: "2x1", Price: 150, Active: true, PaidAt: date("2025-10-01")},
		{ID: "ad-2", Type: models.AdMediaVertical, Price: 300},
	}

	data, err := Workbooks{}.BoughtAds(ads)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{"Anuncios comprados"}, f.GetSheetList())

	rows, err := f.GetRows("Anuncios comprados")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "ad-1", rows[1][0])
	assert.Equal(t, "01/10/2025", rows[1][5])
	assert.Equal(t, "Sí", rows[1][8])
	assert.Equal(t, "No", rows[2][8])
}

func TestAdvertiserEarningsWorkbookTotal(t *testing.T) {
	report := &models.AdvertiserEarningsReport{
		Adds: []models.AdvertiserEarningsLine{
			{ID: "ad-1", UserFullName: "Ana López", Price: 100},
			{ID: "ad-2", UserFullName: "Ana López", Price: 250},
		},
		TotalGanancias: 350,
	}

	data, err := Workbooks{Currency: "Q"}.AdvertiserEarnings(report)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	rows, err := f.GetRows("Ganancias")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Total", rows[3][0])

	raw, err := f.GetCellValue("Ganancias", "F4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "350", raw)
}

func TestAdvertiserEarningsWorkbookNilReport(t *testing.T) {
	data, err := Workbooks{}.AdvertiserEarnings(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestSalesCSV(t *testing.T) {
	paid := models.NewTimestamp(time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC))
	sales := []models.Sale{{
		ID:              "s-1",
		CinemaID:        "c-1",
		ClientID:        "u-1",
		Status:          models.SalePaid,
		TotalAmount:     75.5,
		PaidAt:          paid,
		SaleLineSnacks:  []models.SaleLineSnack{{ID: "l1"}, {ID: "l2"}},
		SaleLineTickets: []models.SaleLineTicket{{ID: "t1"}},
	}}

	data, err := SalesCSV(sales)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,cinema_id,client_id,status,total_amount,claimed_amount,discounted_amount,snack_lines,ticket_lines,created_at,paid_at", lines[0])
	assert.Equal(t, "s-1,c-1,u-1,PAID,75.5,0,0,2,1,,2025-09-01T10:30:00", lines[1])
}
