package menu

import (
	"encoding/json"
	"fmt"
	"strings"

	ierr "github.com/mark3labs/templatetouch/internal/errors"
	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/tidwall/jsonc"
)

// Sentinel marks where rendered entries go in the base menu document.
const Sentinel = "INSERT_INSTALLED_TEMPLATES"

// Compose substitutes rendered entries for the sentinel in base.
// A base document without the sentinel is a MalformedMenuTemplate error.
func Compose(base, rendered string) (string, error) {
	count := strings.Count(base, Sentinel)
	if count == 0 {
		return "", ierr.New(ierr.MalformedMenuTemplate, "compose menu", "",
			fmt.Errorf("sentinel %s not found in base menu", Sentinel))
	}
	if count > 1 {
		logger.Warn("Base menu contains %d sentinels, replacing all of them", count)
	}
	return strings.ReplaceAll(base, Sentinel, rendered), nil
}

// Validate checks that doc parses the way the editor reads menu files:
// JSON with comments and trailing commas allowed.
func Validate(doc string) error {
	if !json.Valid(jsonc.ToJSON([]byte(doc))) {
		return ierr.New(ierr.MalformedMenuTemplate, "validate menu", "",
			fmt.Errorf("composed menu is not valid JSON"))
	}
	return nil
}
