package routes

import (
	"github.com/gin-gonic/gin"

	"meditrack/controllers"
)

func Routes(r *gin.Engine, patients *controllers.PatientController) {
	r.GET("/", patients.List)
	r.POST("/add", patients.Create)
	r.GET("/edit/:id", patients.Edit)
	r.POST("/edit/:id", patients.Update)
	r.POST("/delete/:id", patients.Delete)
}
