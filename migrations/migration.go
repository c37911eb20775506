package main

import (
	"blog-admin/infra"
	"blog-admin/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Article{}); err != nil {
		panic("Failed to migrate database")
	}
}
