package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type fieldTag struct {
	name     string
	required bool
	skip     bool
}

// parseFieldTag reads `name[,required]`. Untagged fields bind by their
// lowercased name.
func parseFieldTag(field reflect.StructField, tagName string) fieldTag {
	tag, ok := field.Tag.Lookup(tagName)
	if !ok || tag == "" {
		return fieldTag{name: strings.ToLower(field.Name)}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}

	name, opts, _ := strings.Cut(tag, ",")
	ft := fieldTag{name: name, skip: name == ""}
	for opt := range strings.SplitSeq(opts, ",") {
		if strings.TrimSpace(opt) == "required" {
			ft.required = true
		}
	}
	return ft
}

func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Join(bindErr, ErrInvalidTarget)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.Join(bindErr, ErrInvalidTarget)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := parseFieldTag(sf, tagName)
		if tag.skip {
			continue
		}

		vals := values[tag.name]
		if len(vals) == 0 || (blank(vals[len(vals)-1]) && (len(vals) == 1 || sf.Type.Kind() != reflect.Slice)) {
			if tag.required {
				return errors.Join(bindErr, fmt.Errorf("%w: %s", ErrMissingField, tag.name))
			}
			continue
		}

		if err := setFieldValue(field, sf.Type, vals); err != nil {
			return errors.Join(bindErr, fmt.Errorf("field %s: %w", tag.name, err))
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func setFieldValue(field reflect.Value, typ reflect.Type, values []string) error {
	if typ.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(typ.Elem()))
		}
		return setFieldValue(field.Elem(), typ.Elem(), values)
	}
	if typ.Kind() == reflect.Slice {
		slice := reflect.MakeSlice(typ, len(values), len(values))
		for i, s := range values {
			if err := setFieldValue(slice.Index(i), typ.Elem(), []string{s}); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	// the last occurrence of a repeated key wins
	raw := values[len(values)-1]
	value := strings.TrimSpace(raw)
	switch typ.Kind() {
	case reflect.String:
		// strings keep their surrounding whitespace
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("%w: int %q", ErrInvalidValue, value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("%w: uint %q", ErrInvalidValue, value)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, typ.Bits())
		if err != nil {
			return fmt.Errorf("%w: float %q", ErrInvalidValue, value)
		}
		field.SetFloat(n)
	case reflect.Bool:
		switch strings.ToLower(value) {
		case "on", "yes":
			field.SetBool(true)
		case "off", "no":
			field.SetBool(false)
		default:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%w: bool %q", ErrInvalidValue, value)
			}
			field.SetBool(b)
		}
	default:
		return fmt.Errorf("unsupported type %s", typ.Kind())
	}
	return nil
}
