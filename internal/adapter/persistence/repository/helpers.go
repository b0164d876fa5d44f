package repository

import (
	"os"
	"time"

	"garagemate/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const dateAttrLayout = "2006-01-02"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// dateRangeFilter builds a Scan filter over a date attribute stored as
// "2006-01-02". Fixed-width date strings compare correctly as strings, which
// is all the calendar-granular filters need. ok is false for a zero filter.
func dateRangeFilter(attr string, f entities.DateFilter) (expr string, names map[string]string, values map[string]types.AttributeValue, ok bool) {
	start, end, ok := f.Range()
	if !ok {
		return "", nil, nil, false
	}
	expr = "#d >= :start AND #d < :end"
	names = map[string]string{"#d": attr}
	values = map[string]types.AttributeValue{
		":start": &types.AttributeValueMemberS{Value: start.Format(dateAttrLayout)},
		":end":   &types.AttributeValueMemberS{Value: end.Format(dateAttrLayout)},
	}
	return expr, names, values, true
}
