package cli

import (
	"fmt"
	"strconv"
)

// parsePageArgs разбирает опциональные позиционные аргументы [page] [limit]
func parsePageArgs(args []string) (page, limit int, err error) {
	if len(args) > 0 {
		page, err = strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page number: %s", args[0])
		}
	}
	if len(args) > 1 {
		limit, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page limit: %s", args[1])
		}
	}
	return page, limit, nil
}

// formatMoney форматирует денежную сумму для вывода
func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// formatActive форматирует флаг активности
func formatActive(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// truncate обрезает строку до n символов для табличного вывода
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
