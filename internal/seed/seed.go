// Package seed materializes the demo catalog on startup: four
// categories and six products, the same fixture every process starts
// from since state lives only in memory.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-api/internal/model"
	"github.com/freshmart/grocery-api/internal/repository"
)

func Run(ctx context.Context, categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, log *slog.Logger) error {
	categories := []model.Category{
		{Name: "Fruits", Description: "Fresh seasonal fruits", ImageURL: "https://images.unsplash.com/photo-1610832958506-aa56368176cf?w=400"},
		{Name: "Vegetables", Description: "Farm fresh vegetables", ImageURL: "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=400"},
		{Name: "Dairy", Description: "Milk, cheese, and dairy products", ImageURL: "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=400"},
		{Name: "Snacks", Description: "Healthy and tasty snacks", ImageURL: "https://images.unsplash.com/photo-1599490659213-e2b9527bd087?w=400"},
	}

	for i := range categories {
		categories[i].Active = true
		if err := categoryRepo.Create(ctx, &categories[i]); err != nil {
			return fmt.Errorf("seed category %q: %w", categories[i].Name, err)
		}
	}

	products := []model.Product{
		{Name: "Fresh Apples", Description: "Crisp red apples", Price: decimal.NewFromInt(120), CategoryID: categories[0].ID, Stock: 50, Unit: "kg", ImageURL: "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400"},
		{Name: "Bananas", Description: "Ripe yellow bananas", Price: decimal.NewFromInt(60), CategoryID: categories[0].ID, Stock: 30, Unit: "dozen", ImageURL: "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400"},
		{Name: "Tomatoes", Description: "Fresh red tomatoes", Price: decimal.NewFromInt(40), CategoryID: categories[1].ID, Stock: 25, Unit: "kg", ImageURL: "https://images.unsplash.com/photo-1546470427-e26264be0b0d?w=400"},
		{Name: "Onions", Description: "Fresh onions", Price: decimal.NewFromInt(30), CategoryID: categories[1].ID, Stock: 40, Unit: "kg", ImageURL: "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400"},
		{Name: "Milk", Description: "Fresh cow milk", Price: decimal.NewFromInt(60), CategoryID: categories[2].ID, Stock: 20, Unit: "liter", ImageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"},
		{Name: "Cheese", Description: "Processed cheese", Price: decimal.NewFromInt(200), CategoryID: categories[2].ID, Stock: 15, Unit: "pack", ImageURL: "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=400"},
	}

	for i := range products {
		products[i].Active = true
		if err := productRepo.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("seed product %q: %w", products[i].Name, err)
		}
	}

	log.Info("sample data initialized", "categories", len(categories), "products", len(products))
	return nil
}
