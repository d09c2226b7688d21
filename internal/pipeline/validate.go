package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

var validate = validator.New()

func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", models.ErrInvalidInput, strings.Join(ValidationMessages(err), "; "))
	}
	switch {
	case r.Reader == nil && r.Path == "":
		return fmt.Errorf("%w: a path or a reader is required", models.ErrInvalidInput)
	case r.Reader != nil && r.Size <= 0:
		return fmt.Errorf("%w: reader size must be positive", models.ErrInvalidInput)
	}
	return nil
}

// ValidationMessages formats validator errors one field at a time.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s (value: %s)", msg, fe.Param())
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
