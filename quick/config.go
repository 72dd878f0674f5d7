package quick

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/LixenWraith/daylog"
)

// config parses configuration strings into a daylog.Config.
// Each argument should be in "key=value" format where key matches a Config toml tag.
func config(args ...string) (*daylog.Config, error) {
	cfg := &daylog.Config{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}
	return cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value". Leading and trailing spaces are removed from both parts.
func parseKeyValue(arg string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(arg), "=")
	if !ok || strings.Contains(value, "=") {
		return "", "", fmt.Errorf("invalid format")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("invalid format")
	}
	return key, strings.TrimSpace(value), nil
}

// setValue updates a Config field using reflection.
// Field matching is case-insensitive. The level field accepts level names.
func setValue(cfg *daylog.Config, key, value string) error {
	key = strings.ToLower(key)

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("toml") != key {
			continue
		}
		f := v.Field(i)

		switch {
		case field.Type == reflect.TypeOf(daylog.Level(0)):
			level, err := daylog.ParseLevel(value)
			if err != nil {
				return err
			}
			f.SetInt(int64(level))

		case f.Kind() == reflect.String:
			if key == "stack_capture" {
				value = strings.ToLower(value)
			}
			// Keep original case for the directory
			f.SetString(value)

		case f.Kind() == reflect.Bool:
			val, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid bool value for %s: %s", key, value)
			}
			f.SetBool(val)

		default:
			return fmt.Errorf("unsupported config type for %s", key)
		}
		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}
