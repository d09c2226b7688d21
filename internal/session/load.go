package session

import (
	"regexp"
	"strconv"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

var reDigits = regexp.MustCompile(`\d+`)

// Load rebuilds the slide -> script mapping of a record. Labels without a
// number are kept verbatim.
func Load(record models.RunRecord) models.Scripts {
	scripts := make(models.Scripts, 0, len(record.Slides))
	for _, e := range record.Slides {
		sc := models.Script{Text: e.Script}
		if n, err := strconv.Atoi(reDigits.FindString(e.Label)); err == nil {
			sc.Slide = n
		} else {
			sc.Label = e.Label
		}
		scripts = append(scripts, sc)
	}
	return scripts
}
