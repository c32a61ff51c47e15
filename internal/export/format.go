package export

import (
	"math"
	"regexp"
	"strings"
	"time"

	"backoffice/internal/models"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultCurrency = "Q"
	dateLayout      = "02/01/2006"
)

var (
	printer    = message.NewPrinter(language.English)
	unsafeRuns = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)
)

// FormatGTQ renders v as quetzales, e.g. "Q1,234.50". Anything that is not
// a finite number renders as the placeholder.
func FormatGTQ(v any) string {
	return FormatMoney(DefaultCurrency, v)
}

func FormatMoney(symbol string, v any) string {
	n, ok := toNumber(v)
	if !ok {
		return models.Placeholder
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + symbol + printer.Sprintf("%.2f", n)
}

// FormatDate renders DD/MM/YYYY. Empty input yields the placeholder and
// text that is not a date is returned as is.
func FormatDate(v any) string {
	switch d := v.(type) {
	case nil:
		return models.Placeholder
	case models.Timestamp:
		if d.IsZero() && d.Raw != "" {
			return d.Raw
		}
	case *models.Timestamp:
		if d != nil && d.IsZero() && d.Raw != "" {
			return d.Raw
		}
	case string:
		if strings.TrimSpace(d) == "" {
			return models.Placeholder
		}
		t, err := dateparse.ParseIn(d, time.UTC)
		if err != nil {
			return d
		}
		return t.Format(dateLayout)
	}

	t, ok := toTime(v)
	if !ok {
		return models.Placeholder
	}
	return t.Format(dateLayout)
}

// Nights counts started days between start and end, never below zero. A
// missing date counts as zero nights.
func Nights(start, end any) int {
	s, ok := toTime(start)
	if !ok {
		return 0
	}
	e, ok := toTime(end)
	if !ok {
		return 0
	}
	nights := int(math.Ceil(e.Sub(s).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// SanitizeID makes id safe for a file name. Runs of characters other than
// letters, digits, underscore and dash become a single underscore.
func SanitizeID(id, fallback string) string {
	if id == "" {
		id = fallback
	}
	return unsafeRuns.ReplaceAllString(id, "_")
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case *float64:
		if n == nil {
			return 0, false
		}
		return finite(*n)
	case string:
		if strings.TrimSpace(n) == "" {
			return 0, false
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toTime(v any) (time.Time, bool) {
	var t time.Time
	switch d := v.(type) {
	case nil:
		return t, false
	case time.Time:
		t = d
	case *time.Time:
		if d == nil {
			return t, false
		}
		t = *d
	case models.Timestamp:
		t = d.Time
	case *models.Timestamp:
		if d == nil {
			return t, false
		}
		t = d.Time
	case string:
		if strings.TrimSpace(d) == "" {
			return t, false
		}
		parsed, err := dateparse.ParseIn(d, time.UTC)
		if err != nil {
			return t, false
		}
		t = parsed
	default:
		return t, false
	}
	if t.IsZero() {
		return t, false
	}
	return t, true
}
