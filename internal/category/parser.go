package category

import (
	"bufio"
	"fmt"
	"path"
	"strings"

	"github.com/Veraticus/marksman/internal/common"
	"github.com/Veraticus/marksman/internal/model"
	"gopkg.in/yaml.v3"
)

// Format identifies how a keyword map file is encoded.
type Format string

const (
	// FormatCSV is one "keyword,category" pair per line.
	FormatCSV Format = "csv"
	// FormatYAML is a single "keyword: category" mapping.
	FormatYAML Format = "yaml"
)

const cutset = " \t\r\n"

// FormatFor picks the format from a file name. Anything that is not
// .yaml or .yml is read as CSV.
func FormatFor(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Parse decodes a keyword map in the given format.
func Parse(data []byte, format Format) (model.KeywordMap, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatCSV:
		return ParseCSV(string(data)), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", common.ErrKeywordMap, format)
	}
}

// ParseCSV reads "keyword,category" lines. Each line is split at its first
// comma and both halves are trimmed. Blank lines and lines without a comma
// are ignored. A repeated keyword keeps its first position and takes the
// last category given for it.
func ParseCSV(content string) model.KeywordMap {
	km := model.KeywordMap{}
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.Trim(scanner.Text(), cutset)
		if line == "" {
			continue
		}

		keyword, category, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		km.Set(strings.Trim(keyword, cutset), strings.Trim(category, cutset))
	}
	return km
}

// ParseYAML reads a single top-level mapping of keyword to category and keeps
// the order in which keywords appear in the document.
func ParseYAML(data []byte) (model.KeywordMap, error) {
	km := model.KeywordMap{}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKeywordMap, err)
	}
	if len(doc.Content) == 0 {
		return km, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of keyword to category", common.ErrKeywordMap, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: keyword and category must be plain values", common.ErrKeywordMap, key.Line)
		}
		keyword := strings.Trim(key.Value, cutset)
		if keyword == "" {
			continue
		}
		km.Set(keyword, strings.Trim(value.Value, cutset))
	}

	return km, nil
}
