package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/elijaffe/rolewatch/internal/listing"
)

// columnCount is the number of cells every data row must carry. The Level
// column is appended afterwards from the table's label.
const columnCount = 6

// labelSelector flattens the elements relevant to label lookup into one
// document-order list: the label candidates plus the tables themselves.
const labelSelector = "h1, h2, h3, h4, strong, p, table"

// Tables enumerates every table on the page in document order, labels each
// with the nearest preceding heading or paragraph, parses its rows into the
// fixed seven-column schema, and concatenates the results. Tables that fail
// to parse are skipped with a warning. An empty combined dataset yields
// ErrNoTables.
func Tables(doc *goquery.Document) (listing.Dataset, error) {
	flat := doc.Find(labelSelector).Nodes

	var ds listing.Dataset
	tableNum := 0
	for i, n := range flat {
		if n.Data != "table" {
			continue
		}
		tableNum++

		rows, err := tableRows(n, tableNum)
		if err != nil {
			log.Warn("skipping unparseable table", "table", tableNum, "err", err)
			continue
		}

		label := labelFor(flat, i, tableNum)
		for _, row := range rows {
			row.Level = label
			ds = append(ds, row)
		}
	}

	if ds.Empty() {
		return nil, ErrNoTables
	}
	return ds, nil
}

// labelFor walks backward from the table at position idx in the flattened
// element list and returns the text of the first heading or paragraph with
// non-empty content. Tables encountered on the way do not stop the scan.
// When nothing matches, a synthetic label is derived from the table's
// 1-based position.
func labelFor(flat []*html.Node, idx int, tableNum int) string {
	for i := idx - 1; i >= 0; i-- {
		if flat[i].Data == "table" {
			continue
		}
		if text := strings.TrimSpace(nodeText(flat[i])); text != "" {
			return text
		}
	}
	return fmt.Sprintf("Untitled Table %d", tableNum)
}

// tableRows parses one table element. The first row is always a header-class
// row and is dropped; every remaining row must have exactly columnCount
// cells. goquery only matches well-formed markup, so a table with no rows at
// all is reported as malformed.
func tableRows(table *html.Node, tableNum int) ([]listing.RoleListing, error) {
	tdoc := goquery.NewDocumentFromNode(table)

	trs := tdoc.Find("tr")
	if trs.Length() == 0 {
		return nil, &TableError{Table: tableNum, Message: "no rows"}
	}

	var rows []listing.RoleListing
	var parseErr error
	trs.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if i == 0 {
			return true // header row, dropped
		}
		cells := tr.Find("th, td")
		if cells.Length() != columnCount {
			parseErr = &TableError{
				Table:   tableNum,
				Message: fmt.Sprintf("row %d has %d cells, want %d", i, cells.Length(), columnCount),
			}
			return false
		}
		vals := make([]string, 0, columnCount)
		cells.Each(func(_ int, c *goquery.Selection) {
			vals = append(vals, strings.TrimSpace(c.Text()))
		})
		rows = append(rows, listing.RoleListing{
			Date:     vals[0],
			Loc:      vals[1],
			Title:    vals[2],
			Company:  vals[3],
			Location: vals[4],
			Link:     vals[5],
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return rows, nil
}

// nodeText collects the text content of a node and its descendants.
func nodeText(node *html.Node) string {
	var buf bytes.Buffer
	collectText(node, &buf)
	return buf.String()
}

func collectText(node *html.Node, buf *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buf.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, buf)
	}
}
