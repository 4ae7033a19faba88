package domain

import "fmt"

const iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

// NormalizeIcon reduces a stored icon value to a single code. Some producers
// store a list of codes; the first element wins. Anything that is not a
// string yields "".
func NormalizeIcon(v any) string {
	switch icon := v.(type) {
	case string:
		return icon
	case []string:
		if len(icon) > 0 {
			return icon[0]
		}
	case []any:
		if len(icon) > 0 {
			s, _ := icon[0].(string)
			return s
		}
	}
	return ""
}

// ExtractIcon returns the icon code of raw.weather[0], or "".
func ExtractIcon(raw map[string]any) string {
	w := firstObject(raw, "weather")
	if w == nil {
		return ""
	}
	return NormalizeIcon(w["icon"])
}

// IconURL returns the public image URL for an icon code, or "" when empty.
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLTemplate, icon)
}
