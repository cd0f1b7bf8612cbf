// Package export renders extraction results as shareable documents.
package export

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/extractor"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// WriteReport writes a docx action-item report: a bold document title, then
// one block per item with owner, due date, confidence, and evidence lines.
func WriteReport(title string, items []extractor.ActionItem, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	addRun(doc.AddParagraph(""), fmt.Sprintf("%d action item(s)", len(items)), false, fontSize)
	doc.AddParagraph("")

	for i, item := range items {
		addRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, item.Title), true, fontSize)
		addRun(doc.AddParagraph(""), "Owner: "+item.Owner, false, fontSize)
		addRun(doc.AddParagraph(""), "Due date: "+orNone(item.DueDate), false, fontSize)
		addRun(doc.AddParagraph(""), fmt.Sprintf("Confidence: %.2f", item.Confidence), false, fontSize)
		addRun(doc.AddParagraph(""), "Evidence: "+orNone(item.Evidence), false, fontSize)
		doc.AddParagraph("")
	}

	if len(items) == 0 {
		addRun(doc.AddParagraph(""), "No action items were found in this meeting.", false, fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func orNone(value *string) string {
	if value == nil || *value == "" {
		return "none"
	}
	return *value
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
