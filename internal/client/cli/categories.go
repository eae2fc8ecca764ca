package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/shopadmin/pkg/api"
)

var categoriesUsage = "Usage: shopadmin categories <list|get|add|update|delete> [args]"

func (c *Cli) runCategories(ctx context.Context, args []string) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", categoriesUsage)
	}

	switch args[0] {
	case "list":
		return c.runCategoriesList(ctx)
	case "get":
		return c.runCategoriesGet(ctx, args[1:])
	case "add":
		return c.runCategoriesAdd(ctx)
	case "update":
		return c.runCategoriesUpdate(ctx, args[1:])
	case "delete":
		return c.runCategoriesDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], categoriesUsage)
	}
}

func (c *Cli) runCategoriesList(ctx context.Context) error {
	list, err := c.adminService.ListCategories(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Categories ===")
	c.io.Println()

	if len(list.Categories) == 0 {
		c.io.Println("No categories found.")
		return nil
	}

	for _, cat := range list.Categories {
		c.io.Printf("%s  %-30s %s\n", cat.ID, truncate(cat.Name, 30), truncate(cat.Description, 40))
	}

	return nil
}

func (c *Cli) runCategoriesGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing category id. Usage: shopadmin categories get <id>")
	}

	category, err := c.adminService.GetCategory(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== Category Details ===")
	c.io.Println()
	c.io.Printf("ID:          %s\n", category.ID)
	c.io.Printf("Name:        %s\n", category.Name)
	c.io.Printf("Description: %s\n", category.Description)

	return nil
}

func (c *Cli) runCategoriesAdd(ctx context.Context) error {
	c.io.Println("=== Add Category ===")
	c.io.Println()

	input, err := c.readCategoryInput(pkgapi.CategoryInput{})
	if err != nil {
		return err
	}

	category, err := c.adminService.CreateCategory(ctx, input)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Category created!")
	c.io.Printf("ID: %s\n", category.ID)

	return nil
}

func (c *Cli) runCategoriesUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing category id. Usage: shopadmin categories update <id>")
	}

	current, err := c.adminService.GetCategory(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== Update Category ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	input, err := c.readCategoryInput(pkgapi.CategoryInput{
		Name:        current.Name,
		Description: current.Description,
	})
	if err != nil {
		return err
	}

	if _, err := c.adminService.UpdateCategory(ctx, current.ID, input); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Category updated!")

	return nil
}

func (c *Cli) runCategoriesDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing category id. Usage: shopadmin categories delete <id>")
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete category %s?", args[0]))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.adminService.DeleteCategory(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Category deleted!")
	return nil
}

func (c *Cli) readCategoryInput(defaults pkgapi.CategoryInput) (pkgapi.CategoryInput, error) {
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

	return input, nil
}
