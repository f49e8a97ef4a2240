package meta

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/fatih/structtag"
	"github.com/hueshift-cloud/hueshift/core/except"
)

// Annotation structs marshal to and from Kubernetes object annotations.
// Every key is prefixed with the annotation's domain; nested struct fields
// are flattened with a "." so keys stay valid qualified names.
type Annotation interface {
	GetDomain() string
}

func ToMap(a Annotation) map[string]string {
	m := map[string]string{}
	if a == nil {
		return m
	}

	marshalFields(a.GetDomain(), "", reflect.ValueOf(a), m)
	return m
}

func FromMap(m map[string]string, a Annotation) error {
	if a == nil {
		return except.NewError("the annotation struct must not be nil", except.ErrInvalid)
	}

	v := reflect.ValueOf(a)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return except.NewError("the annotation must be a ptr to a struct", except.ErrInvalid)
	}

	domain := a.GetDomain()
	for k, ele := range m {
		if !strings.HasPrefix(k, domain+"/") {
			continue
		}

		keyPath := strings.Split(strings.TrimPrefix(k, domain+"/"), ".")
		if err := setField(keyPath, ele, v.Elem()); err != nil {
			return except.NewError("failed to read %s: %s", except.ErrInvalid, k, err.Error())
		}
	}

	return nil
}

func Merge(m map[string]string, a Annotation) map[string]string {
	return MergeMaps(m, ToMap(a))
}

func MergeMaps(m1, m2 map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range m1 {
		out[k] = v
	}
	for k, v := range m2 {
		out[k] = v
	}
	return out
}

func marshalFields(domain, keyPath string, v reflect.Value, m map[string]string) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, ok := fieldName(field)
		if !ok {
			continue
		}

		key := name
		if keyPath != "" {
			key = keyPath + "." + name
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Struct || (fv.Kind() == reflect.Ptr && fv.Type().Elem().Kind() == reflect.Struct) {
			marshalFields(domain, key, fv, m)
			continue
		}

		m[domain+"/"+key] = fmt.Sprintf("%v", fv.Interface())
	}
}

func setField(keyPath []string, val string, v reflect.Value) error {
	for _, part := range keyPath {
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil
		}

		field, ok := findField(v, part)
		if !ok {
			return nil
		}
		v = field
	}

	return setScalar(val, v)
}

func findField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		n, ok := fieldName(t.Field(i))
		if ok && n == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func setScalar(s string, v reflect.Value) error {
	if !v.CanSet() {
		return nil
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return setScalar(s, v.Elem())
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported annotation field kind %s", v.Kind())
	}
	return nil
}

func fieldName(field reflect.StructField) (string, bool) {
	tags, err := structtag.Parse(string(field.Tag))
	if err != nil {
		return "", false
	}

	jsonTag, err := tags.Get("json")
	if err != nil || jsonTag.Name == "" {
		return field.Name, true
	}
	if jsonTag.Name == "-" {
		return "", false
	}
	return jsonTag.Name, true
}
