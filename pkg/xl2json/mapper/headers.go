package mapper

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/parser"
)

// ResolveHeaders advances the cursor one row and derives the header set.
//
// Without caller headers the names are read from that row and trimmed; blank
// cells give empty names. Caller headers must cover every column of the row
// or ErrInvalidColumnCount is returned; names beyond the column count are
// dropped.
func ResolveHeaders(cur parser.RowCursor, callerHeaders []string) (models.HeaderSet, error) {
	cur.Next()
	if err := cur.Err(); err != nil {
		return nil, err
	}
	count := cur.FieldCount()

	if callerHeaders != nil {
		if len(callerHeaders) < count {
			return nil, fmt.Errorf("%w: %d names for %d columns", models.ErrInvalidColumnCount, len(callerHeaders), count)
		}
		headers := make(models.HeaderSet, count)
		copy(headers, callerHeaders)
		return headers, nil
	}

	headers := make(models.HeaderSet, count)
	for i := range headers {
		v, err := cur.Value(i)
		if err != nil {
			return nil, err
		}
		if v != nil {
			headers[i] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return headers, nil
}
