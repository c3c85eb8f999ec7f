package get_occupancy

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

const occupancySheet = "Occupancy"

// ExportContentType MIME тип выгрузки
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportXLSX формирует выгрузку календаря загрузки в Excel
func (uc *UseCase) ExportXLSX(ctx context.Context, req *Request) ([]byte, error) {
	resp, err := uc.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := renderWorkbook(resp)
	if err != nil {
		uc.logger.Error("ExportXLSX: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	uc.logger.Info("ExportXLSX: exported %d slots (%d bytes)", len(resp.Slots), len(data))
	return data, nil
}

// ExportFilename возвращает имя файла выгрузки за период
func ExportFilename(req *Request) string {
	return fmt.Sprintf("occupancy_%s_%s.xlsx", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
}

// exportHeader заголовки колонок: по две колонки (занято/максимум) на каждую возрастную группу
func exportHeader() []string {
	header := []string{"Date", "Session", "Time", "Blocked", "Staff", "PFA Holders", "Level 3", "QTS"}
	for _, band := range domain.AllAgeBands {
		header = append(header, band.Label()+" Booked", band.Label()+" Max")
	}
	return append(header, "PFA Compliant", "EYFS Compliant", "Issues")
}

func exportRow(s SlotOccupancy) []interface{} {
	row := []interface{}{
		s.Slot.Date.Format(domain.DateFormat),
		string(s.Slot.Session),
		s.Slot.StartTime.String() + "-" + s.Slot.EndTime.String(),
		yesNo(s.Slot.IsBlocked),
		s.Staff.Total,
		s.Staff.PFAHolders,
		s.Staff.Level3,
		s.Staff.QTS,
	}
	for _, band := range domain.AllAgeBands {
		row = append(row, s.Counts[band], s.Result.MaxCapacity[band])
	}
	return append(row, yesNo(s.Result.PFACompliant), yesNo(s.Result.EYFSCompliant), issuesText(s.Result))
}

func renderWorkbook(resp *Response) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(occupancySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// Несоответствующие нормам слоты подсвечиваются
	alertStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FDE2E1"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create alert style: %w", err)
	}

	header := exportHeader()
	if err := f.SetSheetRow(occupancySheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(occupancySheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(occupancySheet, "A", lastCol, 14); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(occupancySheet, lastCol, lastCol, 60); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, s := range resp.Slots {
		rowNum := i + 2 // первая строка занята заголовком
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := exportRow(s)
		if err := f.SetSheetRow(occupancySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		if !s.Result.Compliant {
			if err := f.SetCellStyle(occupancySheet, cell, fmt.Sprintf("%s%d", lastCol, rowNum), alertStyle); err != nil {
				return nil, fmt.Errorf("failed to set row style: %w", err)
			}
		}
	}

	if err := f.SetPanes(occupancySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func issuesText(result domain.ComplianceResult) string {
	parts := make([]string, 0, len(domain.AllAgeBands))
	for _, band := range domain.AllAgeBands {
		if issues := result.QualificationIssues[band]; len(issues) > 0 {
			parts = append(parts, band.Label()+": "+strings.Join(issues, ", "))
		}
	}
	return strings.Join(parts, "; ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
