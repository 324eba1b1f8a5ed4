package aishub

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Parse normalizes a decompressed payload in the given output serialization
// into a Response. Each serialization has its own decoder; the three agree
// on the Response shape and on the error-as-data convention (see Header).
// Parse is stateless: equal inputs always yield structurally equal results.
func Parse(output Output, payload []byte) (*Response, error) {
	switch output {
	case OutputJSON:
		return parseJSON(payload)
	case OutputXML:
		return parseXML(payload)
	case OutputCSV:
		return parseCSV(payload)
	default:
		return nil, NewParseError(output, "unsupported output serialization", nil)
	}
}

// parseJSON decodes the JSON serialization: a two-element array whose first
// element is the header object and whose optional second element is the
// record array.
func parseJSON(payload []byte) (*Response, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(payload, &elements); err != nil {
		return nil, NewParseError(OutputJSON, "payload is not a JSON array", err)
	}
	if len(elements) == 0 || len(elements) > 2 {
		return nil, NewParseError(OutputJSON,
			fmt.Sprintf("expected a header element and an optional record element, got %d elements", len(elements)), nil)
	}

	var head map[string]any
	if err := json.Unmarshal(elements[0], &head); err != nil {
		return nil, NewParseError(OutputJSON, "header element is not an object", err)
	}

	hasError, ok := head["ERROR"].(bool)
	if !ok {
		return nil, NewParseError(OutputJSON, `header is missing the boolean "ERROR" key`, nil)
	}
	username, ok := head["USERNAME"].(string)
	if !ok {
		return nil, NewParseError(OutputJSON, `header is missing the "USERNAME" key`, nil)
	}
	format, ok := head["FORMAT"].(string)
	if !ok {
		return nil, NewParseError(OutputJSON, `header is missing the "FORMAT" key`, nil)
	}

	header := Header{
		HasError:    hasError,
		Username:    username,
		Format:      format,
		RecordCount: jsonRecordCount(head["RECORDS"]),
	}
	if hasError {
		if msg, ok := head["ERROR_MESSAGE"].(string); ok {
			header.ErrorMessage = msg
		}
		return &Response{Header: header}, nil
	}

	var records []Record
	if len(elements) == 2 {
		if err := json.Unmarshal(elements[1], &records); err != nil {
			return nil, NewParseError(OutputJSON, "record element is not an array of objects", err)
		}
	}

	return &Response{Header: header, Records: records}, nil
}

// jsonRecordCount reads the optional RECORDS header key, which the provider
// emits as a number but is absent on error responses. Defaults to 0.
func jsonRecordCount(raw any) int {
	switch n := raw.(type) {
	case float64:
		return int(n)
	case string:
		count, _ := strconv.Atoi(n)
		return count
	default:
		return 0
	}
}

// xmlNode is a generic element tree; the provider's vessel schema varies by
// field format, so attributes stay untyped.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// parseXML decodes the XML serialization. The root element's attributes are
// the header; on a provider error the message is the text of the root's
// first child and no records are produced, otherwise every descendant
// element named "vessel" contributes one record in document order.
func parseXML(payload []byte) (*Response, error) {
	var root xmlNode
	if err := xml.Unmarshal(payload, &root); err != nil {
		return nil, NewParseError(OutputXML, "unparseable markup", err)
	}

	attrs := make(map[string]string, len(root.Attrs))
	for _, attr := range root.Attrs {
		attrs[attr.Name.Local] = attr.Value
	}

	errAttr, ok := attrs["ERROR"]
	if !ok {
		return nil, NewParseError(OutputXML, `root element is missing the "ERROR" attribute`, nil)
	}

	header := Header{
		HasError: errAttr == "true",
		Username: attrs["USERNAME"],
		Format:   attrs["FORMAT"],
	}
	if count, ok := attrs["RECORDS"]; ok {
		header.RecordCount, _ = strconv.Atoi(count)
	}

	if header.HasError {
		if len(root.Children) > 0 {
			header.ErrorMessage = root.Children[0].Text
		}
		return &Response{Header: header}, nil
	}

	var records []Record
	collectVessels(&root, &records)

	return &Response{Header: header, Records: records}, nil
}

func collectVessels(node *xmlNode, records *[]Record) {
	if node.XMLName.Local == "vessel" {
		record := make(Record, len(node.Attrs))
		for _, attr := range node.Attrs {
			record[attr.Name.Local] = attr.Value
		}
		*records = append(*records, record)
	}
	for i := range node.Children {
		collectVessels(&node.Children[i], records)
	}
}

// parseCSV decodes the CSV serialization, which carries no native header
// row beyond the column names; header fields are synthesized. By provider
// convention a result with exactly one data row is a rejection whose lone
// content is a human-readable message, not vessel data. A genuine
// single-vessel result is indistinguishable from a rejection by row count
// alone; the convention is reproduced as-is.
func parseCSV(payload []byte) (*Response, error) {
	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		return nil, NewParseError(OutputCSV, "unparseable delimited rows", err)
	}
	if len(rows) == 0 {
		return nil, NewParseError(OutputCSV, "payload holds no rows", nil)
	}

	columns := rows[0]
	body := rows[1:]

	if len(body) == 1 {
		return &Response{Header: Header{
			HasError:     true,
			ErrorMessage: strings.Join(body[0], ","),
		}}, nil
	}

	records := make([]Record, 0, len(body))
	for _, row := range body {
		record := make(Record, len(columns))
		for i, column := range columns {
			record[column] = row[i]
		}
		records = append(records, record)
	}

	return &Response{
		Header:  Header{RecordCount: len(body)},
		Records: records,
	}, nil
}
