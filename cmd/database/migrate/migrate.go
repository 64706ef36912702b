package migration

import (
	"fmt"

	"recipe-management/entities"

	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entities.User{},
		&entities.Ingredient{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.Step{},
		&entities.RecipeIngredient{},
		&entities.RecipeCategory{},
		&entities.Favorite{},
	}
}

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
			return fmt.Errorf("enable uuid-ossp extension: %w", err)
		}
	}

	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	return nil
}
