package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edvin/catalog/internal/platform"
)

var validate = platform.NewValidator()

// ErrBodyTooLarge is returned by Decode when the body crossed the server's
// size limit.
var ErrBodyTooLarge = errors.New("request body too large")

// Decode reads a JSON body into v and runs its validate tags. Validation
// failures name the offending JSON fields.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, mbe.Limit)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation error: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("validation error: %s", strings.Join(msgs, ", "))
	}
	return nil
}

// RequireParam returns s, or an error reading "<name> is required" when s is
// blank.
func RequireParam(s, name string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}
