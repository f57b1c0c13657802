package io

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	bmerrors "github.com/matzehuels/bmcanvas/pkg/errors"
	"github.com/matzehuels/bmcanvas/pkg/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation("idprefix", validIDPrefix)
		validate = v
	})
	return validate
}

// validIDPrefix checks that a typed identifier starts with its kind prefix.
func validIDPrefix(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(model.Identifier)
	if !ok {
		return false
	}
	ref := id.Ref()
	return strings.HasPrefix(ref.ID, ref.Kind.Prefix())
}

// Validate checks the structural shape of doc: supported version, required
// and correctly prefixed identifiers, and globally unique identifiers.
// Problems are collected into a single INVALID_DOCUMENT error whose details
// list each one. References between entities are not checked.
func Validate(doc *model.Document) error {
	if doc == nil {
		return bmerrors.New(bmerrors.ErrCodeInvalidDocument, "document is empty")
	}
	if err := checkVersion(doc.Version); err != nil {
		return err
	}

	var problems []string
	if err := structValidator().Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return bmerrors.Wrap(bmerrors.ErrCodeInternal, err, "validate document")
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}
	problems = append(problems, duplicates(doc)...)

	if len(problems) > 0 {
		return bmerrors.New(bmerrors.ErrCodeInvalidDocument, "%d structural problem(s)", len(problems)).
			WithDetails(problems...)
	}
	return nil
}

func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	switch {
	case v == "", v == "2", strings.HasPrefix(v, "2."):
		return nil
	case v == "1", strings.HasPrefix(v, "1."):
		return bmerrors.New(bmerrors.ErrCodeInvalidDocument,
			"version %s documents must be migrated to version 2 before rendering", v)
	default:
		return bmerrors.New(bmerrors.ErrCodeInvalidDocument, "unsupported document version %q", v)
	}
}

func describe(fe validator.FieldError) string {
	_, path, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "idprefix":
		if id, ok := fe.Value().(model.Identifier); ok {
			ref := id.Ref()
			return fmt.Sprintf("%s: %q must start with %q (%s)", path, ref.ID, ref.Kind.Prefix(), ref.Kind)
		}
	}
	return fmt.Sprintf("%s failed %q", path, fe.Tag())
}

// duplicates reports identifiers declared more than once, across all kinds.
func duplicates(doc *model.Document) []string {
	seen := make(map[string]model.Ref)
	var out []string
	for _, e := range doc.All() {
		ref := e.Ref()
		if ref.ID == "" {
			continue
		}
		if first, dup := seen[ref.ID]; dup {
			out = append(out, fmt.Sprintf("%s: duplicate id %q (first declared as %s)", ref.Kind.Section(), ref.ID, first.Kind))
			continue
		}
		seen[ref.ID] = ref
	}
	return out
}
