package main

import (
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for every persistence model.
func main() {
	generator := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	generator.ApplyBasic(model.All()...)

	generator.Execute()
}
