package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

var productsUsage = "Usage: shopadmin products <list|get|add|update|delete> [args]"

func (c *Cli) runProducts(ctx context.Context, args []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", productsUsage)
	}

	switch args[0] {
	case "list":
		return c.runProductsList(ctx, args[1:])
	case "get":
		return c.runProductsGet(ctx, args[1:])
	case "add":
		return c.runProductsAdd(ctx)
	case "update":
		return c.runProductsUpdate(ctx, args[1:])
	case "delete":
		return c.runProductsDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], productsUsage)
	}
}

func (c *Cli) runProductsList(ctx context.Context, args []string) error {
	page, limit, err := parsePageArgs(args)
	if err != nil {
		return err
	}

	list, err := c.adminService.ListProducts(ctx, page, limit)
	if err != nil {
		return err
	}

	c.io.Println("=== Products ===")
	c.io.Println()

	if len(list.Products) == 0 {
		c.io.Println("No products found.")
		return nil
	}

	for _, p := range list.Products {
		c.io.Printf("%s  %-30s %10s  stock:%-5d %s\n",
			p.ID, truncate(p.Name, 30), formatMoney(p.Price), p.Stock, formatActive(p.IsActive))
	}
	c.io.Println()
	c.io.Printf("Page %d of %d total record(s), %d per page\n", list.Page, list.Total, list.Limit)

	return nil
}

func (c *Cli) runProductsGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: shopadmin products get <id>")
	}

	product, err := c.adminService.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== Product Details ===")
	c.io.Println()
	c.io.Printf("ID:          %s\n", product.ID)
	c.io.Printf("Name:        %s\n", product.Name)
	c.io.Printf("Description: %s\n", product.Description)
	c.io.Printf("Category:    %s\n", product.CategoryID)
	c.io.Printf("Price:       %s\n", formatMoney(product.Price))
	c.io.Printf("Stock:       %d\n", product.Stock)
	c.io.Printf("Status:      %s\n", formatActive(product.IsActive))
	if product.ImageURL != "" {
		c.io.Printf("Image:       %s\n", product.ImageURL)
	}
	c.io.Printf("Created:     %s\n", product.CreatedAt.Format(time.RFC3339))
	c.io.Printf("Updated:     %s\n", product.UpdatedAt.Format(time.RFC3339))

	return nil
}

func (c *Cli) runProductsAdd(ctx context.Context) error {
	c.io.Println("=== Add Product ===")
	c.io.Println()

	input, err := c.readProductInput(pkgapi.ProductInput{IsActive: true})
	if err != nil {
		return err
	}

	product, err := c.adminService.CreateProduct(ctx, input)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Product created!")
	c.io.Printf("ID: %s\n", product.ID)

	return nil
}

func (c *Cli) runProductsUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: shopadmin products update <id>")
	}

	// Текущие значения показываем как значения по умолчанию
	current, err := c.adminService.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== Update Product ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	input, err := c.readProductInput(pkgapi.ProductInput{
		Name:        current.Name,
		Description: current.Description,
		CategoryID:  current.CategoryID,
		ImageURL:    current.ImageURL,
		Price:       current.Price,
		Stock:       current.Stock,
		IsActive:    current.IsActive,
	})
	if err != nil {
		return err
	}

	product, err := c.adminService.UpdateProduct(ctx, current.ID, input)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Product updated!")
	c.io.Printf("ID: %s\n", product.ID)

	return nil
}

func (c *Cli) runProductsDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: shopadmin products delete <id>")
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete product %s?", args[0]))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.adminService.DeleteProduct(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Product deleted!")
	return nil
}

// readProductInput запрашивает поля товара; пустой ввод оставляет значение
// из defaults (для add это нули, для update — текущие значения)
func (c *Cli) readProductInput(defaults pkgapi.ProductInput) (pkgapi.ProductInput, error) {
	input := defaults

	name, err := c.io.ReadInput(fmt.Sprintf("Name [%s]: ", defaults.Name))
	if err != nil {
		return input, fmt.Errorf("failed to read name: %w", err)
	}
	if name != "" {
		input.Name = name
	}
	if input.Name == "" {
		return input, fmt.Errorf("name cannot be empty")
	}

	description, err := c.io.ReadInput(fmt.Sprintf("Description [%s]: ", truncate(defaults.Description, 40)))
	if err != nil {
		return input, fmt.Errorf("failed to read description: %w", err)
	}
	if description != "" {
		input.Description = description
	}

	categoryID, err := c.io.ReadInput(fmt.Sprintf("Category ID [%s]: ", defaults.CategoryID))
	if err != nil {
		return input, fmt.Errorf("failed to read category: %w", err)
	}
	if categoryID != "" {
		input.CategoryID = categoryID
	}

	priceStr, err := c.io.ReadInput(fmt.Sprintf("Price [%s]: ", formatMoney(defaults.Price)))
	if err != nil {
		return input, fmt.Errorf("failed to read price: %w", err)
	}
	if priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			return input, fmt.Errorf("invalid price: %s", priceStr)
		}
		input.Price = price
	}

	stockStr, err := c.io.ReadInput(fmt.Sprintf("Stock [%d]: ", defaults.Stock))
	if err != nil {
		return input, fmt.Errorf("failed to read stock: %w", err)
	}
	if stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			return input, fmt.Errorf("invalid stock: %s", stockStr)
		}
		input.Stock = stock
	}

	imageURL, err := c.io.ReadInput("Image URL (optional): ")
	if err != nil {
		return input, fmt.Errorf("failed to read image URL: %w", err)
	}
	if imageURL != "" {
		input.ImageURL = imageURL
	}

	return input, nil
}
