package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// presentationText walks every slide in order and, for every shape with a
// text body, appends each paragraph's text followed by a line break.
func presentationText(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open presentation: %w", err)
	}
	defer reader.Close()

	type slideFile struct {
		index int
		file  *zip.File
	}

	var slides []slideFile
	for _, file := range reader.File {
		m := slideNameRe.FindStringSubmatch(file.Name)
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{index: index, file: file})
	}

	// Slide file order inside the archive is arbitrary
	sort.Slice(slides, func(i, j int) bool {
		return slides[i].index < slides[j].index
	})

	var result strings.Builder
	for _, slide := range slides {
		rc, err := slide.file.Open()
		if err != nil {
			return "", fmt.Errorf("open slide %d: %w", slide.index, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read slide %d: %w", slide.index, err)
		}

		if err := parseSlideXML(content, &result); err != nil {
			return "", fmt.Errorf("slide %d: %w", slide.index, err)
		}
	}

	return result.String(), nil
}

// slideXML represents the structure of ppt/slides/slideN.xml.
// Paragraphs are reached through shape text bodies in the slide's shape tree.
type slideXML struct {
	Paragraphs []slideParagraph `xml:"cSld>spTree>sp>txBody>p"`
}

type slideParagraph struct {
	Runs []slideRun `xml:"r"`
}

type slideRun struct {
	Text string `xml:"t"`
}

// parseSlideXML appends each paragraph's text plus a newline to result.
func parseSlideXML(content []byte, result *strings.Builder) error {
	var slide slideXML
	if err := xml.Unmarshal(content, &slide); err != nil {
		return fmt.Errorf("parse slide xml: %w", err)
	}

	for _, para := range slide.Paragraphs {
		for _, run := range para.Runs {
			result.WriteString(run.Text)
		}
		result.WriteString("\n")
	}

	return nil
}
