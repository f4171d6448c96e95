// Package document turns broker order-confirmation PDFs into depot.Orders.
//
// Extraction and parsing are two separate seams: ExtractText reads the text
// lines of one PDF, ParseOrder interprets a line sequence. Parsing state is
// held in a per-document context and never shared between documents.
package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText returns the text content of the first page of a PDF document as
// an ordered sequence of lines. Order confirmations are single-page documents;
// all relevant fields live on page one.
func ExtractText(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open document %q: %w", path, err)
	}
	defer f.Close()

	page := r.Page(1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("document %q has no pages", path)
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return nil, fmt.Errorf("cannot extract text from %q: %w", path, err)
	}
	return strings.Split(text, "\n"), nil
}
