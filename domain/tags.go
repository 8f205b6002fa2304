package domain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// tags validates standalone values against go-playground/validator tags.
// It is built on first use because package-level values such as USD are
// validated during initialization.
var tags = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

// checkTag runs tag against v. The error names the first failing tag.
func checkTag(v, tag, what string) error {
	if v == "" {
		return errEmpty
	}
	err := tags().Var(v, tag)
	if err == nil {
		return nil
	}
	var failed validator.ValidationErrors
	if errors.As(err, &failed) && len(failed) > 0 {
		return fmt.Errorf("not %s (failed %q)", what, failed[0].Tag())
	}
	return err
}
