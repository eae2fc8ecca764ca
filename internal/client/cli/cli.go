package cli

import (
	"fmt"

	"github.com/iudanet/shopadmin/internal/client/admin"
	"github.com/iudanet/shopadmin/internal/client/iocli"
	"github.com/iudanet/shopadmin/internal/client/session"
)

type Cli struct {
	sessionService *session.Service
	adminService   *admin.Service
	io             iocli.IO
}

func New(sessionService *session.Service, adminService *admin.Service, io iocli.IO) *Cli {
	return &Cli{
		sessionService: sessionService,
		adminService:   adminService,
		io:             io,
	}
}

func PrintUsage() {
	fmt.Println("ShopAdmin Console")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shopadmin [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080, env: SHOPADMIN_SERVER)")
	fmt.Println("  --db PATH      Path to local session database (default: shopadmin.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                          Login to server")
	fmt.Println("  logout                         Logout and delete local session")
	fmt.Println("  status                         Show authentication status")
	fmt.Println("  dashboard [period]             Show store dashboard (period: week, month, year)")
	fmt.Println("  products list [page] [limit]   List products")
	fmt.Println("  products get <id>              Show product details")
	fmt.Println("  products add                   Create product (interactive)")
	fmt.Println("  products update <id>           Update product (interactive)")
	fmt.Println("  products delete <id>           Delete product")
	fmt.Println("  categories list                List categories")
	fmt.Println("  categories add                 Create category (interactive)")
	fmt.Println("  categories update <id>         Update category (interactive)")
	fmt.Println("  categories delete <id>         Delete category")
	fmt.Println("  orders list [--status S] [--search Q]  List orders")
	fmt.Println("  orders get <id>                Show order details")
	fmt.Println("  orders status <id> <status>    Change order status")
	fmt.Println("  orders delete <id>             Delete order")
	fmt.Println("  users list [page] [limit]      List users")
	fmt.Println("  users get <id>                 Show user details")
	fmt.Println("  users role <id> <role>         Change user role (admin, user)")
	fmt.Println("  users activate <id>            Activate user account")
	fmt.Println("  users deactivate <id>          Deactivate user account")
	fmt.Println("  users delete <id>              Delete user")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  shopadmin login")
	fmt.Println("  shopadmin products list 2 20")
	fmt.Println("  shopadmin orders list --status pending")
	fmt.Println("  shopadmin orders status 42caf1d2 shipped")
	fmt.Println("  shopadmin --server https://shop.example.com dashboard")
}
