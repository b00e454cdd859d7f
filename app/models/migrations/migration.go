package migrations

import (
	"github.com/Rakhulsr/figurine-shop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Category{}, &models.Message{}, &models.Setting{})
}
