package usecase

import (
	"context"
	"fmt"
	"time"

	"cv360-backend/internal/domain"
	"cv360-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo}
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := u.adminRepo.ListUsers(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

var exportColumns = []string{"ID", "USERNAME", "EMAIL", "ROLE", "FULL NAME", "PHONE", "LOCATION", "VERIFIED", "CREATED AT"}

// ExportUsers renders the user listing as an XLSX workbook and returns the
// file bytes plus a dated filename.
func (u *adminUsecase) ExportUsers(ctx context.Context) ([]byte, string, error) {
	users, err := u.ListUsers(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Users"
	f.SetSheetName("Sheet1", sheetName)

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, user := range users {
		values := []interface{}{
			user.ID, user.Username, user.Email, user.Role, user.FullName,
			user.Phone, user.Location, user.IsVerified, user.CreatedAt,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	filename := fmt.Sprintf("users_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// requireAdmin is the fail-safe role check behind the declarative route gate.
func (u *adminUsecase) requireAdmin(ctx context.Context) error {
	if roleFromContext(ctx) != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}
