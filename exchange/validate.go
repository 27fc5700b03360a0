// SPDX-License-Identifier: MIT

package exchange

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/atomistic/element"
	"github.com/katalvlaran/atomistic/errors"
)

// documentValidate checks Document shapes. Initialized in init() with the
// custom tags "finite" and "element".
var documentValidate *validator.Validate

func init() {
	documentValidate = validator.New()
	documentValidate.RegisterTagNameFunc(jsonName)
	_ = documentValidate.RegisterValidation("finite", validateFinite)
	_ = documentValidate.RegisterValidation("element", validateElement)
}

// jsonName reports fields by their exchange key.
func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateElement(fl validator.FieldLevel) bool {
	return element.IsValid(fl.Field().String())
}

// Validate checks the document shape: cell 3×3, pbc of length 3, one
// 3-vector position and a known symbol per site, finite numbers, mass >= 0
// and weight in (0,1], and non-empty declared kind names.
//
// Errors:
//   - errors.ErrSchema for the first violation, the remaining ones attached
//     as details.
func (d *Document) Validate() error {
	err := documentValidate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(err, "exchange: validate document")
	}

	out := errors.Schema(fieldPath(verrs[0]), verrs[0].Value(), describe(verrs[0]))
	for _, fe := range verrs[1:] {
		out = errors.WithDetailf(out, "%s: %s", fieldPath(fe), describe(fe))
	}

	return out
}

// fieldPath drops the root type from the namespace: Document.sites[0].mass
// becomes sites[0].mass.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return "must have length " + fe.Param()
	case "finite":
		return "must be finite"
	case "element":
		return "must be a known chemical symbol"
	case "gt":
		return "must be > " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	}

	return "failed " + fe.Tag()
}
