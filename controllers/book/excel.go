package bookControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// ImportBooksFromExcel bulk-loads the catalog from a spreadsheet. Rows with
// a known ISBN update the existing book; the rest are created. Expected
// columns: Title, Author, ISBN, Quantity, Category, Format.
func ImportBooksFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			title := get(0)
			author := get(1)
			isbn := get(2)
			quantity, qErr := strconv.Atoi(get(3))
			category := get(4)
			format := get(5)

			if title == "" || author == "" || isbn == "" || qErr != nil || quantity < 0 {
				skippedCount++
				continue
			}
			if category == "" || !validCategory(category) {
				category = "novel"
			}
			if format == "" || !validFormat(format) {
				format = string(models.FormatPaperback)
			}

			var existing models.Book
			if err := db.Where("isbn = ?", isbn).First(&existing).Error; err == nil {
				existing.Title = title
				existing.Author = author
				existing.Quantity = quantity
				existing.Category = category
				existing.Format = models.BookFormat(format)
				if err := db.Save(&existing).Error; err == nil {
					updatedCount++
				} else {
					skippedCount++
				}
				continue
			}

			book := models.Book{
				Title:    title,
				Author:   author,
				ISBN:     isbn,
				Quantity: quantity,
				Category: category,
				Format:   models.BookFormat(format),
			}
			if err := db.Create(&book).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
