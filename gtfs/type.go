package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// GTFS encodes absent optional fields as empty strings, so every raw record
// field passes through one of these helpers before reaching a typed entity.

func optField(s string) string {
	return strings.TrimSpace(s)
}

func requireField(name, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

func parseRequiredFloat(name, s string) (float64, error) {
	s, err := requireField(name, s)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %v", name, s, err)
	}
	return val, nil
}

func parseOptionalFloat(name, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': %v", name, s, err)
	}
	return &val, nil
}

func parseOptionalInt(name, s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': %v", name, s, err)
	}
	return &val, nil
}

// parseTriState handles the GTFS accessibility convention: empty and "0" mean
// no information, "1" means yes and "2" means no.
func parseTriState(name, s string) (*bool, error) {
	switch strings.TrimSpace(s) {
	case "", "0":
		return nil, nil
	case "1":
		val := true
		return &val, nil
	case "2":
		val := false
		return &val, nil
	default:
		return nil, fmt.Errorf("invalid %s '%s'", name, s)
	}
}
