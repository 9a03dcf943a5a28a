package services

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/models"
)

// ReportService renders the admin sales report as a PDF with an
// orders-per-status chart.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type salesSummary struct {
	TotalOrders  int64
	TodayOrders  int64
	TotalRevenue int64
	TodayRevenue int64
	ByStatus     map[string]int64
}

func (s *ReportService) summarize() (*salesSummary, error) {
	sum := &salesSummary{ByStatus: make(map[string]int64)}
	today := time.Now().Format("2006-01-02")

	if err := s.DB.Model(&models.Order{}).Count(&sum.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Order{}).
		Where("DATE(created_at) = ?", today).
		Count(&sum.TodayOrders).Error; err != nil {
		return nil, err
	}

	// Cancelled orders do not count as revenue.
	if err := s.DB.Model(&models.Order{}).
		Where("status <> ?", models.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Order{}).
		Where("status <> ? AND DATE(created_at) = ?", models.StatusCancelled, today).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum.TodayRevenue).Error; err != nil {
		return nil, err
	}

	for _, status := range []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		var n int64
		if err := s.DB.Model(&models.Order{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return nil, err
		}
		sum.ByStatus[status] = n
	}
	return sum, nil
}

// statusChartPNG returns nil without error when there are no orders
// yet; the chart renderer rejects an all-zero value range.
func (s *ReportService) statusChartPNG(sum *salesSummary) (*bytes.Buffer, error) {
	if sum.TotalOrders == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(sum.ByStatus))
	for _, status := range []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		bars = append(bars, chart.Value{
			Label: status,
			Value: float64(sum.ByStatus[status]),
		})
	}

	graph := chart.BarChart{
		Title:    "Orders by status",
		Width:    720,
		Height:   400,
		BarWidth: 80,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func formatRupees(minor int64) string {
	return fmt.Sprintf("Rs %.2f", float64(minor)/100)
}

// WriteSalesReport composes the report and writes the PDF to w.
func (s *ReportService) WriteSalesReport(w io.Writer) error {
	sum, err := s.summarize()
	if err != nil {
		return err
	}

	png, err := s.statusChartPNG(sum)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "NUSH Sales Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Generated "+time.Now().Format("2 Jan 2006 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"Total orders", fmt.Sprintf("%d", sum.TotalOrders)},
		{"Orders today", fmt.Sprintf("%d", sum.TodayOrders)},
		{"Total revenue", formatRupees(sum.TotalRevenue)},
		{"Revenue today", formatRupees(sum.TodayRevenue)},
	}
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	if png != nil {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("status-chart", opts, png)
		pdf.ImageOptions("status-chart", 15, pdf.GetY(), 180, 0, false, opts, 0, "")
	}

	return pdf.Output(w)
}
