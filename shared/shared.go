package shared

import (
	"math"
	"strconv"
	"strings"
	"taskboard/shared/dto"
)

// CalculateTotalPages derives the page count from a row count and page size.
// An empty table has zero pages.
func CalculateTotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(pageSize)))
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseID parses a path parameter into an entity id. Anything that is not a
// positive integer is rejected.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
