package main

import (
	"jewelshop/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.StockMovementModel{},
		model.OrderAddressModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.CustomerAddressModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
