package library

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"perpustakaan_backend/internals/features/library/model"
)

type CatalogSeed struct {
	Authors []string `json:"authors"`
	Genres  []string `json:"genres"`
}

// SeedCatalogFromJSON mengisi master data penulis & genre; baris yang
// sudah ada (per nama) dilewati.
func SeedCatalogFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, name := range seed.Authors {
		var existing model.AuthorModel
		if err := db.Where("author_name = ?", name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Penulis %s sudah ada, lewati...", name)
			continue
		}
		if err := db.Create(&model.AuthorModel{AuthorName: name}).Error; err != nil {
			log.Printf("❌ Gagal insert penulis %s: %v", name, err)
		} else {
			log.Printf("✅ Berhasil insert penulis %s", name)
		}
	}

	for _, name := range seed.Genres {
		var existing model.GenreModel
		if err := db.Where("genre_name = ?", name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Genre %s sudah ada, lewati...", name)
			continue
		}
		if err := db.Create(&model.GenreModel{GenreName: name}).Error; err != nil {
			log.Printf("❌ Gagal insert genre %s: %v", name, err)
		} else {
			log.Printf("✅ Berhasil insert genre %s", name)
		}
	}
}
