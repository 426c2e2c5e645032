package seeds

import (
	"gorm.io/gorm"

	library "perpustakaan_backend/internals/seeds/library"
)

func RunAllSeeds(db *gorm.DB) {
	library.SeedCatalogFromJSON(db, "internals/seeds/library/data_catalog.json")
}
