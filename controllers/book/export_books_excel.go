package bookControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// ExportBooksToExcel dumps the whole catalog as a spreadsheet in the same
// column layout the importer expects.
func ExportBooksToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var books []models.Book
		if err := db.Order("id").Find(&books).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Books")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"Title", "Author", "ISBN", "Quantity", "Category", "Format"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, b := range books {
			row := sheet.AddRow()
			row.AddCell().SetValue(b.Title)
			row.AddCell().SetValue(b.Author)
			row.AddCell().SetValue(b.ISBN)
			row.AddCell().SetValue(b.Quantity)
			row.AddCell().SetValue(b.Category)
			row.AddCell().SetValue(string(b.Format))
		}

		c.Header("Content-Disposition", `attachment; filename="books.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
