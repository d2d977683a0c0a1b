package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/wekeepgrowing/semo-todo/internal/domain/entity"
	domainrepo "github.com/wekeepgrowing/semo-todo/internal/domain/repository"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsAny narrows query to rows where any of columns contains term.
// Case-sensitive matching uses the dialect's substring position function
// because LIKE folds ASCII case on SQLite.
func containsAny(query *gorm.DB, term string, caseSensitive bool, columns ...string) *gorm.DB {
	if term == "" || len(columns) == 0 {
		return query
	}

	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))

	if caseSensitive {
		fn := "instr(%s, ?) > 0"
		if query.Dialector.Name() == "postgres" {
			fn = "strpos(%s, ?) > 0"
		}
		for _, col := range columns {
			clauses = append(clauses, fmt.Sprintf(fn, col))
			args = append(args, term)
		}
	} else {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		for _, col := range columns {
			clauses = append(clauses, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col))
			args = append(args, pattern)
		}
	}

	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func paginate(query *gorm.DB, page entity.PaginationParams) *gorm.DB {
	if page.Limit <= 0 {
		return query
	}
	return query.Limit(page.Limit).Offset(page.Offset())
}

// translateWriteError maps unique constraint failures to ErrDuplicateKey.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") {
		return fmt.Errorf("%w: %v", domainrepo.ErrDuplicateKey, err)
	}
	return err
}
