package httpapi

import (
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

type scriptView struct {
	Slide   int    `json:"slide,omitempty"`
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

type sessionView struct {
	RunID   string            `json:"run_id,omitempty"`
	File    string            `json:"file,omitempty"`
	Record  *models.RunRecord `json:"record,omitempty"`
	Scripts []scriptView      `json:"scripts"`
}

func newSessionView(scripts models.Scripts, record *models.RunRecord) sessionView {
	v := sessionView{
		Record:  record,
		Scripts: make([]scriptView, 0, len(scripts)),
	}
	for _, s := range scripts {
		v.Scripts = append(v.Scripts, scriptView{
			Slide:   s.Slide,
			Heading: models.SlideLabel(s.Key()),
			Text:    s.Text,
		})
	}
	return v
}
