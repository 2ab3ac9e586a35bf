package pdf

import (
	"time"

	pdflib "github.com/digitorus/pdf"

	"github.com/digitorus/pdfnumber/common"
)

// DocumentInfo reads the document information dictionary and page count.
func DocumentInfo(r *pdflib.Reader) common.DocumentInfo {
	var info common.DocumentInfo
	if r == nil {
		return info
	}

	info.Pages = r.NumPage()

	v := r.Trailer().Key("Info")
	if v.IsNull() {
		return info
	}

	for _, key := range v.Keys() {
		value := v.Key(key)
		if value.IsNull() {
			continue
		}

		switch key {
		case "Author":
			info.Author = value.Text()
		case "Creator":
			info.Creator = value.Text()
		case "Producer":
			info.Producer = value.Text()
		case "Subject":
			info.Subject = value.Text()
		case "Title":
			info.Title = value.Text()
		// parse dates
		case "CreationDate":
			if t, err := parseDate(value.Text()); err == nil {
				info.CreationDate = &t
			}
		case "ModDate":
			if t, err := parseDate(value.Text()); err == nil {
				info.ModDate = &t
			}
		}
	}

	return info
}

// parseDate parses PDF formatted dates.
func parseDate(v string) (time.Time, error) {
	// PDF Date Format
	// (D:YYYYMMDDHHmmSSOHH'mm')
	//
	// where
	//
	// YYYY is the year
	// MM is the month
	// DD is the day (01-31)
	// HH is the hour (00-23)
	// mm is the minute (00-59)
	// SS is the second (00-59)
	// O is the relationship of local time to Universal Time (UT), denoted by one of the characters +, -, or Z (see below)
	// HH followed by ' is the absolute value of the offset from UT in hours (00-23)
	// mm followed by ' is the absolute value of the offset from UT in minutes (00-59)
	for _, layout := range []string{"D:20060102150405Z07'00'", "D:20060102150405Z07'00", "D:20060102150405Z", "D:20060102150405"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Parse("D:20060102150405Z07'00'", v)
}
