package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// CurrentURL returns requestURI without its page query parameter, ready for a
// page number to be appended: it always ends with "?" or "&".
func CurrentURL(requestURI string) string {
	path, rawQuery, _ := strings.Cut(requestURI, "?")
	if rawQuery == "" {
		return path + "?"
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return path + "?"
	}
	query.Del(keyPage)
	if len(query) == 0 {
		return path + "?"
	}
	return path + "?" + query.Encode() + "&"
}

// PageURL is CurrentURL with page appended.
func PageURL(requestURI string, page int) string {
	return CurrentURL(requestURI) + keyPage + "=" + strconv.Itoa(page)
}
