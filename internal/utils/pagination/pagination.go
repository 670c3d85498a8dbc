// Package pagination holds the offset-pagination arithmetic shared by the
// repositories and handlers: one place for the page/offset law so the two
// can never disagree.
package pagination

// Offset converts a 1-based page number and page size into a row offset.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// PageCount is the number of non-empty pages for a total row count, i.e.
// ceil(total/pageSize). Requests past this page yield empty data with the
// same total.
func PageCount(total int64, pageSize int) int64 {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
