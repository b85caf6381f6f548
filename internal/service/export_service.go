package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoShifts     = errors.New("该区间内无班次可导出")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 班次表导出为 Excel (.xlsx)，按日期排序，一行一班次
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportShifts 导出指定用户在日期区间内的班次
	ExportShifts(ctx context.Context, userID string, from, to *time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportShifts(ctx context.Context, userID string, from, to *time.Time) (*bytes.Buffer, string, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 查询班次
	shifts, err := s.repo.Shift.ListByUser(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, "", err
	}
	if len(shifts) == 0 {
		return nil, "", ErrExportNoShifts
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Shifts"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	fullName := fmt.Sprintf("%s %s", user.FirstName, user.LastName)
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Planning", fullName))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"Date", "Jour", "Début", "Fin", "Type", "Modifié"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), h)
	}

	weekdayNames := []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

	// 数据行
	row := 3
	for i := range shifts {
		shift := &shifts[i]

		startTime, endTime := "-", "-"
		if shift.StartTime != nil {
			startTime = *shift.StartTime
		}
		if shift.EndTime != nil {
			endTime = *shift.EndTime
		}
		overridden := "non"
		if shift.Overridden {
			overridden = "oui"
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), shift.Date.Format(dateLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), weekdayNames[model.Weekday(shift.Date)])
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), startTime)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), endTime)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), shift.ShiftType)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), overridden)
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("planning_%s_%s.xlsx", user.LastName, time.Now().Format(dateLayout))
	return buf, filename, nil
}
