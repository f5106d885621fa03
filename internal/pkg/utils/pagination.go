package utils

import "math"

// TotalPages - количество страниц, ceil(total / perPage)
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Offset - смещение для 1-based номера страницы, при переполнении
// насыщается до math.MaxInt64
func Offset(page, perPage int) int64 {
	if page < 1 || perPage <= 0 {
		return 0
	}
	if int64(page-1) > math.MaxInt64/int64(perPage) {
		return math.MaxInt64
	}
	return int64(page-1) * int64(perPage)
}
