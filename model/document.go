package model

// Document represents a spec-sheet document as delivered by the extraction layer
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Producer string
	Source   string // path or name the document was read from
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// FirstPageText returns the text of page 1, or "" for an empty document.
func (d *Document) FirstPageText() string {
	if len(d.Pages) == 0 || d.Pages[0] == nil {
		return ""
	}
	return d.Pages[0].Text
}

// PageTexts returns the text of every page in page order. Pages without text
// contribute an empty string so indices stay aligned with page numbers.
func (d *Document) PageTexts() []string {
	texts := make([]string, len(d.Pages))
	for i, page := range d.Pages {
		if page != nil {
			texts[i] = page.Text
		}
	}
	return texts
}

// ExtractTables returns all tables from all pages in page order
func (d *Document) ExtractTables() []*Table {
	var tables []*Table
	for _, page := range d.Pages {
		if page == nil {
			continue
		}
		tables = append(tables, page.Tables...)
	}
	return tables
}

// Subset returns a shallow copy of the document restricted to the given
// 1-indexed page numbers, in the order given. Page numbers are preserved.
func (d *Document) Subset(numbers []int) *Document {
	sub := &Document{Metadata: d.Metadata, Pages: make([]*Page, 0, len(numbers))}
	for _, n := range numbers {
		if p := d.GetPage(n); p != nil {
			sub.Pages = append(sub.Pages, p)
		}
	}
	return sub
}
