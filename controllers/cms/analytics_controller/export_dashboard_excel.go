package analytics_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/rash6677/kpi-optimisation-dashboard/services"
	"github.com/xuri/excelize/v2"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDashboardExcel godoc
// @Summary Export dashboard tables as Excel
// @Description Builds an xlsx workbook with one sheet per aggregate table (KPIs, monthly revenue, category revenue, city performance, payment methods, product analysis, weekday performance, segment summary) for the filtered view
// @Tags Admin - Analytics
// @Produce octet-stream
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated category allow-list"
// @Param cities query string false "Comma-separated city allow-list"
// @Success 200 "xlsx file"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/analytics/export/excel [get]
func ExportDashboardExcel(c *gin.Context) {
	log.Printf("[admin.analytics-export-excel] start")

	view, ok := resolveDashboardView(c, "admin.analytics-export-excel")
	if !ok {
		return
	}

	kpis := services.ComputeKPIs(view.Orders)
	metrics := services.BuildCustomerMetrics(view.Orders, time.Now())

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	writeSheet := func(name string, headers []string, rows [][]interface{}) {
		f.NewSheet(name)
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(name, cell, h)
			f.SetCellStyle(name, cell, cell, headerStyle)
			colName, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(name, colName, colName, 18)
		}
		for r, row := range rows {
			for i, v := range row {
				cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
				f.SetCellValue(name, cell, v)
			}
		}
	}

	avgOrderValue := interface{}("no data")
	if kpis.AvgOrderValue != nil {
		avgOrderValue = *kpis.AvgOrderValue
	}
	f.SetSheetName("Sheet1", "KPIs")
	writeSheet("KPIs",
		[]string{"Metric", "Value"},
		[][]interface{}{
			{"Total Revenue", kpis.TotalRevenue},
			{"Total Orders", kpis.TotalOrders},
			{"Average Order Value", avgOrderValue},
			{"Unique Customers", kpis.UniqueCustomers},
			{"Repeat Customer Rate (%)", kpis.RepeatCustomerRate},
		})

	monthlyRows := [][]interface{}{}
	for _, r := range services.MonthlyRevenue(view.Orders) {
		monthlyRows = append(monthlyRows, []interface{}{r.Month, r.Revenue, r.OrderCount})
	}
	writeSheet("Monthly Revenue", []string{"Month", "Revenue", "Orders"}, monthlyRows)

	categoryRows := [][]interface{}{}
	for _, r := range services.CategoryRevenue(view.Orders) {
		categoryRows = append(categoryRows, []interface{}{r.Category, r.Revenue})
	}
	writeSheet("Category Revenue", []string{"Category", "Revenue"}, categoryRows)

	cityRows := [][]interface{}{}
	for _, r := range services.CityPerformance(view.Orders) {
		cityRows = append(cityRows, []interface{}{r.City, r.Revenue, r.UniqueCustomers})
	}
	writeSheet("City Performance", []string{"City", "Revenue", "Unique Customers"}, cityRows)

	paymentRows := [][]interface{}{}
	for _, r := range services.PaymentDistribution(view.Orders) {
		paymentRows = append(paymentRows, []interface{}{r.PaymentMethod, r.OrderCount})
	}
	writeSheet("Payment Methods", []string{"Payment Method", "Orders"}, paymentRows)

	productRows := [][]interface{}{}
	for _, r := range services.ProductCategoryAnalysis(view.Orders) {
		perCustomer := interface{}("no data")
		if r.RevenuePerCustomer != nil {
			perCustomer = *r.RevenuePerCustomer
		}
		productRows = append(productRows, []interface{}{
			r.Category, r.TotalRevenue, r.TotalOrders, r.AvgOrderValue,
			r.AvgDiscount, r.UniqueCustomers, perCustomer,
		})
	}
	writeSheet("Product Analysis",
		[]string{"Category", "Revenue", "Orders", "Avg Order Value", "Avg Discount (%)", "Unique Customers", "Revenue per Customer"},
		productRows)

	weekdayRows := [][]interface{}{}
	for _, r := range services.WeekdayPerformance(view.Orders) {
		weekdayRows = append(weekdayRows, []interface{}{r.Weekday, r.TotalRevenue, r.TotalOrders, r.AvgOrderValue})
	}
	writeSheet("Weekday Performance", []string{"Weekday", "Revenue", "Orders", "Avg Order Value"}, weekdayRows)

	segmentRows := [][]interface{}{}
	for _, r := range services.SegmentSummary(metrics) {
		segmentRows = append(segmentRows, []interface{}{r.Segment, r.CustomerCount, r.AvgTotalSpent, r.AvgOrderCount, r.AvgOrderValue})
	}
	writeSheet("Segment Summary", []string{"Segment", "Customers", "Avg Total Spent", "Avg Order Count", "Avg Order Value"}, segmentRows)

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("[admin.analytics-export-excel] ERROR write workbook err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build Excel export"))
		return
	}

	filename := fmt.Sprintf("dashboard-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	log.Printf("[admin.analytics-export-excel] respond 200 bytes=%d", buf.Len())

	c.Data(http.StatusOK, excelContentType, buf.Bytes())
}
