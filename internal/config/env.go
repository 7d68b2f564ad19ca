package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

// applyEnvOverrides walks the config struct and overwrites any field
// whose `env` tag names an environment variable that is set. Nested
// structs are walked recursively; fields without an `env` tag are left
// untouched.
func applyEnvOverrides(s interface{}) error {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envName := fieldType.Tag.Get("env")
		if envName == "" {
			continue
		}

		envValue, set := os.LookupEnv(envName)
		if !set {
			continue
		}

		if err := assignEnvValue(field, envValue); err != nil {
			return fmt.Errorf("env var %s does not fit field %s: %w", envName, fieldType.Name, err)
		}
	}

	return nil
}

// assignEnvValue parses an environment variable string into the field's type
func assignEnvValue(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field is not settable")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// time.Duration is an int64 under the hood but reads as "15m"
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			duration, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("parsing duration: %w", err)
			}
			field.Set(reflect.ValueOf(duration))
			return nil
		}
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing integer: %w", err)
		}
		field.SetInt(intValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parsing boolean: %w", err)
		}
		field.SetBool(boolValue)

	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parsing float: %w", err)
		}
		field.SetFloat(floatValue)

	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}

	return nil
}
