package analytics_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
)

// DownloadDashboardReport godoc
// @Summary Download dashboard summary PDF
// @Description Generates and downloads a one-page PDF with the filtered view's KPIs and segment summary
// @Tags Admin - Analytics
// @Produce octet-stream
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/download-report [get]
func DownloadDashboardReport(c *gin.Context) {
	log.Printf("[admin.analytics-download-report] start")

	view, ok := resolveDashboardView(c, "admin.analytics-download-report")
	if !ok {
		return
	}

	kpis := services.ComputeKPIs(view.Orders)
	summary := services.SegmentSummary(services.BuildCustomerMetrics(view.Orders, time.Now()))

	buf, err := generateDashboardReportPDF(view, kpis, summary)
	if err != nil {
		log.Printf("[admin.analytics-download-report] ERROR generate PDF err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	filename := fmt.Sprintf("dashboard-report-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	log.Printf("[admin.analytics-download-report] respond 200 bytes=%d", buf.Len())

	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// generateDashboardReportPDF lays out the one-page summary report.
func generateDashboardReportPDF(view *dashboardView, kpis models.DashboardKPIs, summary []models.SegmentSummaryRow) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("BUSINESS ANALYTICS REPORT", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Period: %s to %s",
				view.DateFrom.Format("Jan 02, 2006"), view.DateTo.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Generated: %s", time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("KEY PERFORMANCE INDICATORS", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	avgOrderValue := "no data"
	if kpis.AvgOrderValue != nil {
		avgOrderValue = fmt.Sprintf("%.2f", *kpis.AvgOrderValue)
	}
	kpiLines := [][2]string{
		{"Total Revenue", fmt.Sprintf("%.2f", kpis.TotalRevenue)},
		{"Total Orders", fmt.Sprintf("%d", kpis.TotalOrders)},
		{"Average Order Value", avgOrderValue},
		{"Unique Customers", fmt.Sprintf("%d", kpis.UniqueCustomers)},
		{"Repeat Customer Rate", fmt.Sprintf("%.1f%%", kpis.RepeatCustomerRate)},
	}
	for _, line := range kpiLines {
		label, value := line[0], line[1]
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(label, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(6, func() {
				m.Text(value, props.Text{Size: 9, Style: consts.Bold, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("CUSTOMER SEGMENTS", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(4, func() {
			m.Text("Segment", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Customers", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(3, func() {
			m.Text("Avg Spent", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(3, func() {
			m.Text("Avg Orders", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	for _, row := range summary {
		row := row
		m.Row(5, func() {
			m.Col(4, func() {
				m.Text(row.Segment, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", row.CustomerCount), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("%.2f", row.AvgTotalSpent), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("%.1f", row.AvgOrderCount), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
