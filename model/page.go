package model

// Page represents a single page of a document
type Page struct {
	Number int      // 1-indexed page number
	Text   string   // Plain text, "" when the page has none
	Tables []*Table // Table grids found on the page
}

// NewPage creates a new page holding the given text
func NewPage(text string) *Page {
	return &Page{
		Text:   text,
		Tables: make([]*Table, 0),
	}
}

// AddTable adds a table grid to the page
func (p *Page) AddTable(table *Table) {
	p.Tables = append(p.Tables, table)
}
