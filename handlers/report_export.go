package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportStockToExcel downloads the stock register as an Excel workbook.
func (h *Handler) ExportStockToExcel(w http.ResponseWriter, r *http.Request) {
	items := h.svc.StockItems(r.URL.Query().Get("siteId"))

	headers := []string{"Material", "Quantity", "Unit", "Location", "Reorder Level", "Status", "Last Updated"}
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{
			item.MaterialName,
			item.Quantity,
			item.Unit,
			item.Location,
			item.ReorderLevel,
			string(item.Status),
			item.LastUpdated.Format("2006-01-02 15:04"),
		})
	}

	f, err := buildWorkbook("Stock Register", headers, rows)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	h.sendWorkbook(w, f, "stock_register")
}

// ExportGSTBillsToExcel downloads all GST bills as an Excel workbook.
func (h *Handler) ExportGSTBillsToExcel(w http.ResponseWriter, r *http.Request) {
	bills := h.svc.GSTBills()

	headers := []string{"Bill Number", "Vendor", "Vendor GST", "Taxable Amount", "GST Amount", "Grand Total", "Status", "Date"}
	rows := make([][]any, 0, len(bills))
	for _, bill := range bills {
		rows = append(rows, []any{
			bill.BillNumber,
			bill.VendorName,
			bill.VendorGST,
			bill.TotalAmount.StringFixed(2),
			bill.GSTAmount.StringFixed(2),
			bill.GrandTotal.StringFixed(2),
			string(bill.Status),
			bill.Date.Format("2006-01-02"),
		})
	}

	f, err := buildWorkbook("GST Bills", headers, rows)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	h.sendWorkbook(w, f, "gst_bills")
}

// ExportVarianceToExcel downloads the consumption variance report.
func (h *Handler) ExportVarianceToExcel(w http.ResponseWriter, r *http.Request) {
	report := h.svc.ConsumptionVariance(r.URL.Query().Get("siteId"))

	headers := []string{"Material", "Theoretical Qty", "Actual Qty", "Unit", "Variance", "Variance %", "Status"}
	rows := make([][]any, 0, len(report))
	for _, row := range report {
		rows = append(rows, []any{
			row.MaterialName,
			row.TheoreticalQty,
			row.ActualQty,
			row.Unit,
			row.Variance,
			fmt.Sprintf("%.1f", row.VariancePercent),
			string(row.Status),
		})
	}

	f, err := buildWorkbook("Consumption Variance", headers, rows)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	h.sendWorkbook(w, f, "consumption_variance")
}

func (h *Handler) sendWorkbook(w http.ResponseWriter, f *excelize.File, name string) {
	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// buildWorkbook lays a titled, styled sheet out the same way for every
// export: title row, header row, data rows, auto-sized columns.
func buildWorkbook(title string, headers []string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 14,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
		},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})

	f.SetCellValue(sheet, "A1", title)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", "Generated: "+time.Now().Format("02 Jan 2006 15:04"))

	for i, head := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, head)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	for i := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		f.SetColWidth(sheet, col, col, 18)
	}

	return f, nil
}
