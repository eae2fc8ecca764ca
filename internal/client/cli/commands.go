package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "dashboard":
		err = c.runDashboard(ctx, args)
	case "products":
		err = c.runProducts(ctx, args)
	case "categories":
		err = c.runCategories(ctx, args)
	case "orders":
		err = c.runOrders(ctx, args)
	case "users":
		err = c.runUsers(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
