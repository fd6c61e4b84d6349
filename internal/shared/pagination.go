package shared

// AllowedPageSizes are the page lengths the listing endpoints accept.
var AllowedPageSizes = []int{10, 20, 50}

// ValidPageSize reports whether limit is one of the allowed page lengths.
func ValidPageSize(limit int) bool {
	for _, s := range AllowedPageSizes {
		if limit == s {
			return true
		}
	}
	return false
}

// Offset converts a 1-based page number and limit into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
