package service

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration форматирует прошедшее время для отчёта: целые дни, часы и
// минуты, секунды отбрасываются без округления. Ненулевые фрагменты
// склеиваются без разделителя ("1 hours1 minutes") — это формат отчёта,
// а не ошибка. Если все компоненты нулевые, возвращается "0 minutes",
// так что строка никогда не бывает пустой.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)

	days := total / 86400
	seconds := total % 86400
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	var b strings.Builder

	if days != 0 {
		fmt.Fprintf(&b, "%d days", days)
	}

	if hours != 0 {
		fmt.Fprintf(&b, "%d hours", hours)
	}

	if minutes != 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%d minutes", minutes)
	}

	return b.String()
}
