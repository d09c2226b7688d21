package models

// SourceDocument holds the extracted text of a page range.
// Pages[i] is the text of page Start+i.
type SourceDocument struct {
	FileName   string
	TotalPages int
	Start      int
	End        int
	Pages      []string
}

// SlideNum returns the real page number of the i-th extracted page.
func (d SourceDocument) SlideNum(i int) int {
	return d.Start + i
}

// Len returns the number of extracted pages.
func (d SourceDocument) Len() int {
	return len(d.Pages)
}
