package student

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"student-portal-system/internal/global/response"
	"student-portal-system/internal/global/store"
	"student-portal-system/internal/model"
	"student-portal-system/tools"
)

// Export downloads the full roster as a spreadsheet, newest first.
func Export(c *gin.Context) {
	students, err := store.AllOrdered[model.Student]("created_at", true, 0)
	if err != nil {
		log.Error("student export query failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, "Students", students); err != nil {
		log.Error("student export failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		log.Error("drop default sheet failed", "error", err)
	}

	filename := "students-" + time.Now().Format("20060102") + ".xlsx"
	tools.SetDownloadHeaders(c, filename, tools.ExcelContentType)
	if err := f.Write(c.Writer); err != nil {
		log.Error("student export write failed", "error", err)
	}
}
