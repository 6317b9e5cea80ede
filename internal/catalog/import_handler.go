package catalog

import (
	"strconv"
	"strings"

	"foodcourt-backend/internal/auth"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// POST /api/outlets/:id/menu/import
// XLSX dosyasından toplu menü yükler. Beklenen kolonlar:
// isim | fiyat | kategori | açıklama (ilk satır başlıksa atlanır)
func ImportMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := auth.CurrentOwner(c)
		if err != nil {
			return err
		}

		var outlet models.Outlet
		if err := database.DB.First(&outlet, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
		}
		if outlet.OwnerID != owner.ID {
			return fiber.NewError(fiber.StatusForbidden, "Bu outlet'in sahibi değilsiniz")
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası boş")
		}

		// İlk satır başlık satırı mı?
		startIndex := 0
		if len(rows[0]) > 0 {
			firstCell := strings.ToUpper(strings.TrimSpace(rows[0][0]))
			if strings.Contains(firstCell, "NAME") || strings.Contains(firstCell, "İSİM") ||
				strings.Contains(firstCell, "ISIM") || strings.Contains(firstCell, "ITEM") {
				startIndex = 1
			}
		}

		imported := 0
		skipped := 0
		rowErrors := make([]string, 0)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			for i := startIndex; i < len(rows); i++ {
				row := rows[i]
				if len(row) == 0 {
					continue
				}

				name := strings.TrimSpace(row[0])
				if name == "" {
					continue
				}
				if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
					rowErrors = append(rowErrors, "satır "+strconv.Itoa(i+1)+": fiyat eksik")
					skipped++
					continue
				}
				price, perr := strconv.Atoi(strings.TrimSpace(row[1]))
				if perr != nil || price < 0 {
					rowErrors = append(rowErrors, "satır "+strconv.Itoa(i+1)+": geçersiz fiyat")
					skipped++
					continue
				}

				category := ""
				if len(row) > 2 {
					category = strings.TrimSpace(row[2])
				}
				description := ""
				if len(row) > 3 {
					description = strings.TrimSpace(row[3])
				}

				// Aynı isimli item bu outlet menüsünde zaten varsa atla
				var existing int64
				tx.Model(&models.MenuItem{}).
					Joins("JOIN items ON items.id = menu_items.item_id").
					Where("menu_items.outlet_id = ? AND items.name = ?", outlet.ID, name).
					Count(&existing)
				if existing > 0 {
					skipped++
					continue
				}

				item := models.Item{
					Name:         name,
					Price:        price,
					CategoryName: category,
					Description:  description,
					IsAvailable:  true,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				link := models.MenuItem{OutletID: outlet.ID, ItemID: item.ID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
				imported++
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Toplu yükleme başarısız: "+err.Error())
		}

		logrus.WithFields(logrus.Fields{
			"outlet_id": outlet.ID,
			"imported":  imported,
			"skipped":   skipped,
		}).Info("Menü toplu yükleme tamamlandı")

		return c.JSON(fiber.Map{
			"message":  "Toplu yükleme tamamlandı",
			"imported": imported,
			"skipped":  skipped,
			"errors":   rowErrors,
		})
	}
}
